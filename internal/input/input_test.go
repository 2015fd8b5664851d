package input

import (
	"image"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTranslate(t *testing.T) {
	Convey("Raw samples map onto event types", t, func() {
		cases := []struct {
			in   Pointer
			want Type
		}{
			{Pointer{Button: ButtonPrimary, Action: Press}, PrimaryDown},
			{Pointer{Button: ButtonPrimary, Action: Release}, PrimaryUp},
			{Pointer{Button: ButtonSecondary, Action: Press}, SecondaryDown},
			{Pointer{Button: ButtonSecondary, Action: Release}, SecondaryUp},
			{Pointer{Button: ButtonNone, Action: Motion}, Move},
			{Pointer{Button: ButtonPrimary, Action: Motion}, Drag},
			{Pointer{Button: ButtonSecondary, Action: Motion}, Drag},
			{Pointer{Button: ButtonMiddle, Action: Press}, None},
			{Pointer{Button: ButtonNone, Action: Release}, None},
		}
		for _, tc := range cases {
			ev := Translate(tc.in)
			So(ev.Type, ShouldEqual, tc.want)
		}

		Convey("and keep their coordinates", func() {
			ev := Translate(Pointer{Button: ButtonPrimary, Action: Press, X: 17, Y: 42})
			So(ev.Point, ShouldResemble, image.Pt(17, 42))
			So(ev.String(), ShouldEqual, "primary-down@17,42")
		})
	})
}

func TestBus(t *testing.T) {
	Convey("Given a bus", t, func() {
		b := NewBus()

		Convey("Only the latest unread sample is kept", func() {
			for i := 1; i <= 3; i++ {
				b.Publish(Pointer{Action: Motion, X: i})
			}
			got := <-b.C()
			So(got.X, ShouldEqual, 3)
			So(len(b.C()), ShouldEqual, 0)
		})

		Convey("An unread click survives later motion", func() {
			b.Publish(Pointer{Button: ButtonPrimary, Action: Press, X: 7})
			b.Publish(Pointer{Action: Motion, X: 8})
			b.Publish(Pointer{Action: Motion, X: 9})
			got := <-b.C()
			So(got.Action, ShouldEqual, Press)
			So(got.X, ShouldEqual, 7)
		})

		Convey("A newer click still replaces an unread one", func() {
			b.Publish(Pointer{Button: ButtonPrimary, Action: Press, X: 1})
			b.Publish(Pointer{Button: ButtonPrimary, Action: Release, X: 2})
			got := <-b.C()
			So(got.Action, ShouldEqual, Release)
			So(got.X, ShouldEqual, 2)
		})

		Convey("Close drains to a closed channel and later publishes are ignored", func() {
			b.Publish(Pointer{Action: Motion, X: 1})
			b.Close()
			b.Close()
			b.Publish(Pointer{Action: Motion, X: 2})

			first, ok := <-b.C()
			So(ok, ShouldBeTrue)
			So(first.X, ShouldEqual, 1)
			_, ok = <-b.C()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestStream(t *testing.T) {
	Convey("Stream translates samples and ends with its source", t, func() {
		done := make(chan struct{})
		defer close(done)
		raw := make(chan Pointer)
		events := Stream(done, raw)

		go func() {
			raw <- Pointer{Button: ButtonPrimary, Action: Press, X: 5, Y: 6}
			raw <- Pointer{Action: Motion, X: 7, Y: 8}
			close(raw)
		}()

		var got []Event
		timeout := time.After(2 * time.Second)
	loop:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					break loop
				}
				got = append(got, ev)
			case <-timeout:
				break loop
			}
		}
		So(got, ShouldResemble, []Event{
			{Type: PrimaryDown, Point: image.Pt(5, 6)},
			{Type: Move, Point: image.Pt(7, 8)},
		})
	})
}

func TestPoller(t *testing.T) {
	Convey("Given a poller", t, func() {
		var p Poller

		Convey("The first snapshot reports no motion", func() {
			So(p.Poll(Snapshot{X: 10, Y: 10}), ShouldBeEmpty)
		})

		Convey("Moving the cursor reports motion", func() {
			p.Poll(Snapshot{X: 10, Y: 10})
			So(p.Poll(Snapshot{X: 12, Y: 10}), ShouldResemble, []Pointer{{Button: ButtonNone, Action: Motion, X: 12, Y: 10}})
			So(p.Poll(Snapshot{X: 12, Y: 10}), ShouldBeEmpty)
		})

		Convey("Held buttons turn motion into drags", func() {
			p.Poll(Snapshot{X: 0, Y: 0})
			got := p.Poll(Snapshot{X: 1, Y: 1, SecondaryHeld: true})
			So(got[0].Button, ShouldEqual, ButtonSecondary)
			So(Translate(got[0]).Type, ShouldEqual, Drag)
		})

		Convey("Presses come after motion and releases", func() {
			p.Poll(Snapshot{X: 0, Y: 0})
			got := p.Poll(Snapshot{X: 3, Y: 4, PrimaryHeld: true, PrimaryPressed: true, SecondaryReleased: true})
			So(got, ShouldResemble, []Pointer{
				{Button: ButtonPrimary, Action: Motion, X: 3, Y: 4},
				{Button: ButtonSecondary, Action: Release, X: 3, Y: 4},
				{Button: ButtonPrimary, Action: Press, X: 3, Y: 4},
			})
		})
	})
}
