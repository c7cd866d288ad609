package scroll

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func pageLayout() *Layout {
	return NewLayout(
		Block{ID: "hero", Height: 900},
		Block{ID: About, Height: 600},
		Block{ID: Experience, Height: 1400},
		Block{ID: Projects, Height: 1100},
		Block{ID: Contact, Height: 500},
	)
}

func TestRatio(t *testing.T) {
	Convey("Given a 900px viewport with a -300px vertical margin", t, func() {
		margin := Uniform(-300)

		Convey("When the top of a tall section fills the root", func() {
			root := Viewport{ScrollY: 1500, Height: 900}.Root(margin)
			target := Span{Top: 1500, Height: 1400}

			Convey("Then the root is the middle 300px", func() {
				So(root.Top, ShouldEqual, 1800.0)
				So(root.Height, ShouldEqual, 300.0)
			})
			Convey("Then the ratio is measured against the shorter root", func() {
				So(Ratio(target, root), ShouldEqual, 1.0)
			})
		})

		Convey("When a section only reaches into the lower margin", func() {
			root := Viewport{ScrollY: 0, Height: 900}.Root(margin)
			target := Span{Top: 650, Height: 1400}

			Convey("Then it is not inside the root", func() {
				So(Ratio(target, root), ShouldEqual, 0.0)
			})
		})

		Convey("When a short section is half inside the root", func() {
			root := Viewport{ScrollY: 0, Height: 900}.Root(margin)
			target := Span{Top: 550, Height: 100}

			Convey("Then the ratio is one half", func() {
				So(Ratio(target, root), ShouldAlmostEqual, 0.5, 1e-9)
			})
		})

		Convey("When the viewport is shorter than both margins", func() {
			root := Viewport{ScrollY: 0, Height: 500}.Root(margin)

			Convey("Then nothing intersects", func() {
				So(Ratio(Span{Top: 0, Height: 5000}, root), ShouldEqual, 0.0)
			})
		})
	})
}

func TestLayout(t *testing.T) {
	Convey("Given the stacked page layout", t, func() {
		l := pageLayout()

		Convey("Then sections stack in order", func() {
			exp, ok := l.Lookup(Experience)
			So(ok, ShouldBeTrue)
			So(exp.Top, ShouldEqual, 1500.0)
			So(l.Height(), ShouldEqual, 4500.0)
		})

		Convey("Then the last section can still reach the viewport top", func() {
			So(l.MaxScroll(900), ShouldEqual, 4000.0)
		})

		Convey("Then unknown sections are not mounted", func() {
			_, ok := l.Lookup("footer")
			So(ok, ShouldBeFalse)
		})

		Convey("Then a nil layout mounts nothing", func() {
			var empty *Layout
			_, ok := empty.Lookup(About)
			So(ok, ShouldBeFalse)
			So(empty.MaxScroll(900), ShouldEqual, 0.0)
		})
	})
}

func TestPath(t *testing.T) {
	Convey("Given an eased path", t, func() {
		p := Path(0, 1000, 10)

		Convey("Then it ends exactly on the target", func() {
			So(p, ShouldHaveLength, 10)
			So(p[9], ShouldEqual, 1000.0)
		})

		Convey("Then it never moves backwards", func() {
			for i := 1; i < len(p); i++ {
				So(p[i], ShouldBeGreaterThanOrEqualTo, p[i-1])
			}
		})

		Convey("Then zero frames jumps straight there", func() {
			So(Path(10, 20, 0), ShouldResemble, []float64{20})
		})
	})
}

func TestNavigator(t *testing.T) {
	Convey("Given a navigator at the top of the page", t, func() {
		ctx := context.Background()
		nav := NewNavigator(pageLayout(), Viewport{Height: 900}, WithFrames(8), WithFrameInterval(0))

		var frames []Viewport
		nav.OnFrame(func(vp Viewport) { frames = append(frames, vp) })

		Convey("When the Contact trigger is activated", func() {
			ok, err := nav.Activate(ctx, "Contact")

			Convey("Then the contact section's top aligns with the viewport top", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				contact, _ := pageLayout().Lookup(Contact)
				So(nav.Viewport().ScrollY, ShouldEqual, contact.Top)
			})
			Convey("Then every frame was delivered", func() {
				So(frames, ShouldHaveLength, 8)
			})
		})

		Convey("When scrolling to a section that is not mounted", func() {
			ok, err := nav.ScrollTo(ctx, "footer")

			Convey("Then nothing happens", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
				So(frames, ShouldBeEmpty)
				So(nav.Viewport().ScrollY, ShouldEqual, 0.0)
			})
		})

		Convey("When an unknown label is activated", func() {
			ok, err := nav.Activate(ctx, "Blog")

			Convey("Then it is ignored", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			ok, err := nav.ScrollTo(cctx, Projects)

			Convey("Then the scroll stops before moving", func() {
				So(ok, ShouldBeTrue)
				So(err, ShouldEqual, context.Canceled)
				So(nav.Viewport().ScrollY, ShouldEqual, 0.0)
			})
		})

		Convey("When the context is cancelled partway through a scroll", func() {
			slow := NewNavigator(pageLayout(), Viewport{Height: 900}, WithFrames(50), WithFrameInterval(time.Hour))
			cctx, cancel := context.WithCancel(ctx)
			defer cancel()
			var seen []Viewport
			slow.OnFrame(func(vp Viewport) {
				seen = append(seen, vp)
				cancel()
			})
			ok, err := slow.ScrollTo(cctx, Projects)

			Convey("Then it stops between the start and the destination", func() {
				So(ok, ShouldBeTrue)
				So(err, ShouldEqual, context.Canceled)
				So(seen, ShouldHaveLength, 1)
				projects, _ := pageLayout().Lookup(Projects)
				y := slow.Viewport().ScrollY
				So(y, ShouldBeGreaterThan, 0.0)
				So(y, ShouldBeLessThan, projects.Top)
			})
		})
	})

	Convey("Given the navigation triggers", t, func() {
		links := Links()

		Convey("Then they are About, Experience, Projects and Contact", func() {
			So(links, ShouldHaveLength, 4)
			So(links[0], ShouldResemble, Link{Label: "About", Target: About})
			So(links[3], ShouldResemble, Link{Label: "Contact", Target: Contact})
		})
	})
}
