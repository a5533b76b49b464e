package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
)

func testDoctors() []domain.Doctor {
	return []domain.Doctor{
		{
			ID:             "1",
			Name:           "Dr. Sarah Johnson",
			Specialization: "Cardiologist",
			Availability: []domain.TimeSlot{
				{Date: "2025-08-03", Slots: []string{"09:00", "10:00"}},
			},
		},
		{ID: "2", Name: "Dr. Michael Chen", Specialization: "Dermatologist"},
	}
}

func testAppointment(id string) domain.Appointment {
	return domain.Appointment{
		ID:          id,
		DoctorID:    "1",
		PatientName: "Jane Doe",
		Email:       "jane@example.com",
		Date:        "2025-08-03",
		Time:        "09:00",
		Status:      domain.StatusConfirmed,
	}
}

func TestReduce_SetSearchTerm(t *testing.T) {
	initial := State{Doctors: testDoctors(), SearchTerm: "old"}

	next := Reduce(initial, SetSearchTerm{Term: "cardio"})

	assert.Equal(t, "cardio", next.SearchTerm)
	assert.Equal(t, initial.Doctors, next.Doctors)
	assert.Equal(t, initial.Appointments, next.Appointments)
	assert.Equal(t, "old", initial.SearchTerm)
}

func TestReduce_SetSearchTermIsIdempotent(t *testing.T) {
	initial := State{Doctors: testDoctors()}

	once := Reduce(initial, SetSearchTerm{Term: "derm"})
	twice := Reduce(once, SetSearchTerm{Term: "derm"})

	assert.Equal(t, once, twice)
}

func TestReduce_AddAppointmentAppends(t *testing.T) {
	first := testAppointment("a1")
	initial := State{Appointments: []domain.Appointment{first}}

	second := testAppointment("a2")
	next := Reduce(initial, AddAppointment{Appointment: second})

	require.Len(t, next.Appointments, 2)
	assert.Equal(t, first, next.Appointments[0])
	assert.Equal(t, second, next.Appointments[1])
	require.Len(t, initial.Appointments, 1, "previous snapshot must stay untouched")
}

func TestReduce_AddAppointmentDoesNotShareBackingArray(t *testing.T) {
	base := make([]domain.Appointment, 1, 10)
	base[0] = testAppointment("a0")
	initial := State{Appointments: base}

	left := Reduce(initial, AddAppointment{Appointment: testAppointment("left")})
	right := Reduce(initial, AddAppointment{Appointment: testAppointment("right")})

	assert.Equal(t, "left", left.Appointments[1].ID)
	assert.Equal(t, "right", right.Appointments[1].ID)
}

func TestReduce_SetDoctorsReplacesCatalog(t *testing.T) {
	initial := State{Doctors: testDoctors(), SearchTerm: "x", Appointments: []domain.Appointment{testAppointment("a1")}}
	replacement := []domain.Doctor{{ID: "9", Name: "Dr. New"}}

	next := Reduce(initial, SetDoctors{Doctors: replacement})

	require.Len(t, next.Doctors, 1)
	assert.Equal(t, "9", next.Doctors[0].ID)
	assert.Equal(t, "x", next.SearchTerm)
	assert.Equal(t, initial.Appointments, next.Appointments)

	replacement[0].Name = "mutated"
	assert.Equal(t, "Dr. New", next.Doctors[0].Name)
}

func TestReduce_NilActionIsNoop(t *testing.T) {
	initial := State{Doctors: testDoctors(), SearchTerm: "x"}
	assert.Equal(t, initial, Reduce(initial, nil))
}

func TestStore_Dispatch(t *testing.T) {
	store := NewStore(testDoctors())

	store.SetSearchTerm("chen")
	store.AddAppointment(testAppointment("a1"))

	st := store.State()
	assert.Equal(t, "chen", st.SearchTerm)
	require.Len(t, st.Appointments, 1)
	assert.Equal(t, "a1", st.Appointments[0].ID)
	assert.Len(t, st.Doctors, 2)
}

func TestStore_NewStoreCopiesSeed(t *testing.T) {
	seed := testDoctors()
	store := NewStore(seed)

	seed[0].Availability[0].Slots[0] = "23:59"

	assert.Equal(t, "09:00", store.State().Doctors[0].Availability[0].Slots[0])
}

func TestStore_SnapshotIsStable(t *testing.T) {
	store := NewStore(testDoctors())
	store.AddAppointment(testAppointment("a1"))

	snapshot := store.State()
	store.AddAppointment(testAppointment("a2"))

	assert.Len(t, snapshot.Appointments, 1)
	assert.Len(t, store.State().Appointments, 2)
}

func TestStore_ConcurrentAppendsAreSerialized(t *testing.T) {
	store := NewStore(nil)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			store.AddAppointment(testAppointment("a"))
		}()
	}
	wg.Wait()

	assert.Len(t, store.State().Appointments, n)
}

func TestStore_Subscribe(t *testing.T) {
	store := NewStore(testDoctors())

	var seen []string
	unsubscribe := store.Subscribe(func(s State) {
		seen = append(seen, s.SearchTerm)
	})

	store.SetSearchTerm("a")
	store.SetSearchTerm("b")
	unsubscribe()
	store.SetSearchTerm("c")

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestStore_ListenersSeeDispatchOrder(t *testing.T) {
	store := NewStore(testDoctors())

	var (
		mu   sync.Mutex
		seen []int
	)
	store.Subscribe(func(s State) {
		mu.Lock()
		seen = append(seen, len(s.Appointments))
		mu.Unlock()
	})

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.AddAppointment(testAppointment("a"))
		}()
	}
	wg.Wait()

	require.Len(t, seen, n)
	for i, count := range seen {
		assert.Equal(t, i+1, count, "notification %d arrived out of order", i)
	}
}

func TestStore_UninitializedPanics(t *testing.T) {
	var zero Store
	assert.PanicsWithValue(t, ErrNotInitialized, func() { zero.State() })

	var nilStore *Store
	assert.PanicsWithValue(t, ErrNotInitialized, func() { nilStore.SetSearchTerm("x") })
}
