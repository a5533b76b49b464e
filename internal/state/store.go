package state

import (
	"sync"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
)

// State данные приложения: каталог врачей, бронирования и поисковый запрос
type State struct {
	Doctors      []domain.Doctor
	Appointments []domain.Appointment
	SearchTerm   string
}

// Listener получает новое состояние после каждого Dispatch
type Listener func(State)

// Store единственный владелец State.
// Все изменения проходят через Dispatch и применяются по очереди;
// слушатели получают состояния в том же порядке.
type Store struct {
	dispatchMu sync.Mutex // упорядочивает применение действий и уведомления

	mu          sync.RWMutex
	state       State
	initialized bool

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int
}

// NewStore создает хранилище с начальным каталогом
func NewStore(doctors []domain.Doctor) *Store {
	return &Store{
		state: State{
			Doctors:      cloneDoctors(doctors),
			Appointments: []domain.Appointment{},
		},
		initialized: true,
		listeners:   make(map[int]Listener),
	}
}

// State возвращает текущий снимок состояния.
// Срезы снимка не меняются последующими Dispatch.
func (s *Store) State() State {
	s.mustBeInitialized()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch применяет действие и возвращает новое состояние.
// Слушатели вызываются синхронно и не должны вызывать Dispatch.
func (s *Store) Dispatch(a Action) State {
	s.mustBeInitialized()

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	s.mu.Unlock()

	s.notify(next)
	return next
}

// SetSearchTerm заменяет поисковый запрос
func (s *Store) SetSearchTerm(term string) State {
	return s.Dispatch(SetSearchTerm{Term: term})
}

// AddAppointment добавляет бронирование
func (s *Store) AddAppointment(appointment domain.Appointment) State {
	return s.Dispatch(AddAppointment{Appointment: appointment})
}

// SetDoctors заменяет каталог
func (s *Store) SetDoctors(doctors []domain.Doctor) State {
	return s.Dispatch(SetDoctors{Doctors: doctors})
}

// Subscribe регистрирует слушателя, возвращает функцию отписки
func (s *Store) Subscribe(l Listener) func() {
	s.mustBeInitialized()

	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *Store) notify(next State) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(next)
	}
}

// mustBeInitialized ошибка подключения, а не данных: падаем сразу
func (s *Store) mustBeInitialized() {
	if s == nil || !s.initialized {
		panic(ErrNotInitialized)
	}
}
