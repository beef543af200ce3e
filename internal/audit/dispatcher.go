package audit

import "log"

type Event struct {
	UserID  uint
	Action  string
	Details string
}

// Dispatcher grava eventos de auditoria de melhor esforço fora do caminho
// da requisição. O cancelamento de agendamento NÃO passa por aqui: aquela
// linha é transacional e vai junto com o delete.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev.UserID, ev.Action, ev.Details); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		log.Println("audit queue full, dropping event")
	}
}
