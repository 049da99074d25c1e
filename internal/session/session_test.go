package session

import "testing"

type event struct {
	userID   uint
	signedIn bool
}

func TestSubscribeSeesCurrentState(t *testing.T) {
	reg := NewRegistry()
	reg.SignIn(Principal{UserID: 1, Email: "a@x.com"})
	reg.SignIn(Principal{UserID: 2, Email: "b@x.com"})

	seen := make(map[uint]bool)
	reg.Subscribe(func(p Principal, signedIn bool) {
		if !signedIn {
			t.Errorf("initial replay delivered sign-out for user %d", p.UserID)
		}
		seen[p.UserID] = true
	})

	if !seen[1] || !seen[2] {
		t.Errorf("observer missed active principals: %v", seen)
	}
}

func TestTransitionsNotifyObservers(t *testing.T) {
	reg := NewRegistry()

	var events []event
	reg.Subscribe(func(p Principal, signedIn bool) {
		events = append(events, event{p.UserID, signedIn})
	})

	reg.SignIn(Principal{UserID: 5})
	reg.SignOut(5)

	want := []event{{5, true}, {5, false}}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %v", len(events), len(want), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event[%d] = %v, want %v", i, events[i], want[i])
		}
	}
}

func TestSignInIsIdempotent(t *testing.T) {
	reg := NewRegistry()

	count := 0
	reg.Subscribe(func(Principal, bool) { count++ })

	reg.SignIn(Principal{UserID: 1})
	reg.SignIn(Principal{UserID: 1})
	reg.Ensure(Principal{UserID: 1})

	if count != 1 {
		t.Errorf("observer invoked %d times, want 1", count)
	}
}

func TestSignOutUnknownIsIgnored(t *testing.T) {
	reg := NewRegistry()

	count := 0
	reg.Subscribe(func(Principal, bool) { count++ })

	reg.SignOut(42)
	if count != 0 {
		t.Errorf("observer invoked %d times for unknown sign-out", count)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	reg := NewRegistry()

	count := 0
	unsubscribe := reg.Subscribe(func(Principal, bool) { count++ })
	unsubscribe()

	reg.SignIn(Principal{UserID: 1})
	if count != 0 {
		t.Errorf("observer invoked %d times after unsubscribe", count)
	}
}

func TestCurrent(t *testing.T) {
	reg := NewRegistry()
	reg.SignIn(Principal{UserID: 3, Email: "c@x.com"})

	p, ok := reg.Current(3)
	if !ok || p.Email != "c@x.com" {
		t.Errorf("Current(3) = %+v, %v", p, ok)
	}
	if _, ok := reg.Current(4); ok {
		t.Error("Current(4) reported an inactive principal")
	}
}
