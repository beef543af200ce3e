package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fswbarber/booking-api/internal/models"
)

type bookingResp struct {
	ID      uint      `json:"id"`
	Date    time.Time `json:"date"`
	Service struct {
		Name       string `json:"name"`
		Barbershop struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"barbershop"`
	} `json:"service"`
	User struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

func TestListBookingsRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/admin/bookings", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestListBookingsForbiddenForCustomer(t *testing.T) {
	env := newTestEnv(t)

	customer := env.createUser(t, "Carlos", "carlos@example.com", models.RoleUser)
	token := env.login(t, customer)

	w := env.do(t, http.MethodGet, "/api/admin/bookings", token, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestListBookingsShopFilterAndOrdering(t *testing.T) {
	env := newTestEnv(t)

	admin := env.createUser(t, "Ana", "ana@example.com", models.RoleAdmin)
	alice := env.createUser(t, "Alice", "alice@example.com", models.RoleUser)

	shopA := env.createShop(t, "Barbearia A")
	shopB := env.createShop(t, "Barbearia B")
	svcA := env.createService(t, shopA, "Corte", 50)
	svcB := env.createService(t, shopB, "Barba", 30)

	older := env.createBooking(t, alice, svcA, time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC))
	newer := env.createBooking(t, alice, svcA, time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC))
	env.createBooking(t, alice, svcB, time.Date(2024, 5, 11, 9, 0, 0, 0, time.UTC))

	token := env.login(t, admin)

	w := env.do(t, http.MethodGet, fmt.Sprintf("/api/admin/bookings?barbershopId=%d", shopA.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	got := decodeBody[[]bookingResp](t, w)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (somente da barbearia A)", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Fatalf("ordem = [%d %d], want [%d %d] (data decrescente)",
			got[0].ID, got[1].ID, newer.ID, older.ID)
	}
	if got[0].Service.Barbershop.ID != shopA.ID {
		t.Fatalf("barbershop id = %d, want %d", got[0].Service.Barbershop.ID, shopA.ID)
	}
	if got[0].User.Name != "Alice" {
		t.Fatalf("user name = %q, want Alice", got[0].User.Name)
	}

	// hash de senha jamais atravessa a projeção
	if strings.Contains(w.Body.String(), "password") || strings.Contains(w.Body.String(), "secret123") {
		t.Fatalf("resposta vazou credencial: %s", w.Body.String())
	}
}

func TestListBookingsDateWindow(t *testing.T) {
	env := newTestEnv(t)

	admin := env.createUser(t, "Ana", "ana@example.com", models.RoleAdmin)
	alice := env.createUser(t, "Alice", "alice@example.com", models.RoleUser)
	shop := env.createShop(t, "Barbearia A")
	svc := env.createService(t, shop, "Corte", 50)

	// meio-dia UTC cai dentro do dia-calendário em America/Sao_Paulo
	env.createBooking(t, alice, svc, time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC))
	inWindow1 := env.createBooking(t, alice, svc, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	inWindow2 := env.createBooking(t, alice, svc, time.Date(2024, 1, 1, 20, 30, 0, 0, time.UTC))
	env.createBooking(t, alice, svc, time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC))

	token := env.login(t, admin)

	w := env.do(t, http.MethodGet, "/api/admin/bookings?date=2024-01-01", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	got := decodeBody[[]bookingResp](t, w)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (janela inclusiva do dia)", len(got))
	}

	want := map[uint]bool{inWindow1.ID: true, inWindow2.ID: true}
	for _, bk := range got {
		if !want[bk.ID] {
			t.Fatalf("booking %d fora da janela apareceu na listagem", bk.ID)
		}
	}
}

func TestCancelBookingAsAdmin(t *testing.T) {
	env := newTestEnv(t)

	admin := env.createUser(t, "Ana", "ana@example.com", models.RoleAdmin)
	alice := env.createUser(t, "Alice", "alice@example.com", models.RoleUser)
	shop := env.createShop(t, "Barbearia A")
	svc := env.createService(t, shop, "Corte", 50)
	bk := env.createBooking(t, alice, svc, time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC))

	token := env.login(t, admin)

	// ADMIN cancela sem informar barbearia
	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/bookings/%d", bk.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var remaining int64
	env.db.Model(&models.Booking{}).Where("id = ?", bk.ID).Count(&remaining)
	if remaining != 0 {
		t.Fatal("agendamento ainda existe após cancelamento")
	}

	if n := env.countLogs(t, models.ActionCancelBooking); n != 1 {
		t.Fatalf("logs CANCEL_BOOKING = %d, want exatamente 1", n)
	}

	var entry models.Log
	if err := env.db.Where("action = ?", models.ActionCancelBooking).First(&entry).Error; err != nil {
		t.Fatalf("load log: %v", err)
	}
	for _, frag := range []string{"Alice", "Corte", "Barbearia A", "Ana", "ADMIN", " às "} {
		if !strings.Contains(entry.Details, frag) {
			t.Fatalf("details %q sem %q", entry.Details, frag)
		}
	}
	if entry.UserID != admin.ID {
		t.Fatalf("log user id = %d, want %d", entry.UserID, admin.ID)
	}
}

func TestCancelBookingBarberWrongShop(t *testing.T) {
	env := newTestEnv(t)

	barber := env.createUser(t, "Bruno", "bruno@example.com", models.RoleBarber)
	alice := env.createUser(t, "Alice", "alice@example.com", models.RoleUser)
	shopA := env.createShop(t, "Barbearia A")
	shopB := env.createShop(t, "Barbearia B")
	svcA := env.createService(t, shopA, "Corte", 50)
	bk := env.createBooking(t, alice, svcA, time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC))

	token := env.login(t, barber)

	w := env.do(t, http.MethodDelete,
		fmt.Sprintf("/api/admin/bookings/%d?barbershopId=%d", bk.ID, shopB.ID), token, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	var remaining int64
	env.db.Model(&models.Booking{}).Where("id = ?", bk.ID).Count(&remaining)
	if remaining != 1 {
		t.Fatal("agendamento sumiu apesar do 403")
	}
	if n := env.countLogs(t, models.ActionCancelBooking); n != 0 {
		t.Fatalf("logs = %d, want 0", n)
	}
}

func TestCancelBookingBarberMissingShopID(t *testing.T) {
	env := newTestEnv(t)

	barber := env.createUser(t, "Bruno", "bruno@example.com", models.RoleBarber)
	alice := env.createUser(t, "Alice", "alice@example.com", models.RoleUser)
	shop := env.createShop(t, "Barbearia A")
	svc := env.createService(t, shop, "Corte", 50)
	bk := env.createBooking(t, alice, svc, time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC))

	token := env.login(t, barber)

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/bookings/%d", bk.ID), token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCancelBookingBarberOwnShop(t *testing.T) {
	env := newTestEnv(t)

	barber := env.createUser(t, "Bruno", "bruno@example.com", models.RoleBarber)
	alice := env.createUser(t, "Alice", "alice@example.com", models.RoleUser)
	shop := env.createShop(t, "Barbearia A")
	svc := env.createService(t, shop, "Corte", 50)
	bk := env.createBooking(t, alice, svc, time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC))

	token := env.login(t, barber)

	w := env.do(t, http.MethodDelete,
		fmt.Sprintf("/api/admin/bookings/%d?barbershopId=%d", bk.ID, shop.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if n := env.countLogs(t, models.ActionCancelBooking); n != 1 {
		t.Fatalf("logs = %d, want 1", n)
	}
}

func TestCancelBookingNotFound(t *testing.T) {
	env := newTestEnv(t)

	admin := env.createUser(t, "Ana", "ana@example.com", models.RoleAdmin)
	token := env.login(t, admin)

	w := env.do(t, http.MethodDelete, "/api/admin/bookings/9999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if n := env.countLogs(t, models.ActionCancelBooking); n != 0 {
		t.Fatalf("cancelamento inexistente gerou %d logs", n)
	}
}

func TestCancelBookingForbiddenForCustomer(t *testing.T) {
	env := newTestEnv(t)

	customer := env.createUser(t, "Carlos", "carlos@example.com", models.RoleUser)
	alice := env.createUser(t, "Alice", "alice@example.com", models.RoleUser)
	shop := env.createShop(t, "Barbearia A")
	svc := env.createService(t, shop, "Corte", 50)
	bk := env.createBooking(t, alice, svc, time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC))

	token := env.login(t, customer)

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/bookings/%d", bk.ID), token, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	var remaining int64
	env.db.Model(&models.Booking{}).Where("id = ?", bk.ID).Count(&remaining)
	if remaining != 1 {
		t.Fatal("agendamento sumiu apesar do 403")
	}
}
