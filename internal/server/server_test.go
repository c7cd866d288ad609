package server

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/net/html"

	"github.com/noobstar3310/aikwei-dev/internal/content"
	"github.com/noobstar3310/aikwei-dev/internal/render"
	"github.com/noobstar3310/aikwei-dev/internal/scroll"
	"github.com/noobstar3310/aikwei-dev/internal/theme"
)

func newTestServer(t *testing.T) (*Server, *prometheus.Registry) {
	return newLoggedServer(t, ":0", zerolog.Nop())
}

func newLoggedServer(t *testing.T, addr string, log zerolog.Logger) (*Server, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	s, err := New(Deps{
		Addr:     addr,
		GinMode:  "test",
		Profile:  content.Default(),
		Observer: theme.DefaultObserverConfig(),
		Logger:   log,
		Registry: reg,
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return s, reg
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHome(t *testing.T) {
	Convey("Given a server", t, func() {
		s, reg := newTestServer(t)
		h := s.Handler()

		Convey("When the page is requested", func() {
			w := get(h, "/")

			Convey("Then it is served as HTML in the light palette", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				So(w.Header().Get(requestIDHeader), ShouldNotBeEmpty)

				doc, err := html.Parse(strings.NewReader(w.Body.String()))
				So(err, ShouldBeNil)
				for _, id := range []string{scroll.About, scroll.Experience, scroll.Projects} {
					So(render.HasClass(render.ByID(doc, id), "bg-white"), ShouldBeTrue)
				}
			})

			Convey("Then the render is counted", func() {
				So(testutil.ToFloat64(s.metrics.renders.WithLabelValues("light")), ShouldEqual, 1.0)
				So(testutil.ToFloat64(s.metrics.requests.WithLabelValues("/", "GET", "200")), ShouldEqual, 1.0)
			})
		})

		Convey("When the dark palette is requested", func() {
			w := get(h, "/?theme=dark")
			doc, err := html.Parse(strings.NewReader(w.Body.String()))
			So(err, ShouldBeNil)

			Convey("Then the themed sections are white on black", func() {
				for _, id := range []string{scroll.About, scroll.Experience, scroll.Projects} {
					sec := render.ByID(doc, id)
					So(render.HasClass(sec, "bg-black"), ShouldBeTrue)
					So(render.HasClass(sec, "text-white"), ShouldBeTrue)
				}
			})
		})

		Convey("When an unknown theme is requested", func() {
			w := get(h, "/?theme=sepia")

			Convey("Then the light page is served", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `data-theme="light"`)
			})
		})

		Convey("When a request id is supplied", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(requestIDHeader, "abc-123")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			Convey("Then it is echoed back", func() {
				So(w.Header().Get(requestIDHeader), ShouldEqual, "abc-123")
			})
		})

		Convey("When the client script is requested", func() {
			w := get(h, "/static/app.js")

			Convey("Then it is served and not counted", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "scrollIntoView")
				n, err := testutil.GatherAndCount(reg, "aikwei_http_requests_total")
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 0)
			})
		})

		Convey("When health is checked", func() {
			w := get(h, "/healthz")

			Convey("Then it reports ok", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldEqual, `{"status":"ok"}`)
			})
		})

		Convey("When metrics are scraped after a page view", func() {
			get(h, "/")
			w := get(h, "/metrics")
			body, _ := io.ReadAll(w.Body)

			Convey("Then the request counter is exposed", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(string(body), ShouldContainSubstring, `aikwei_http_requests_total{method="GET",route="/",status="200"} 1`)
			})
		})

		Convey("When an unknown path is requested", func() {
			w := get(h, "/blog")

			Convey("Then it is not found", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestFailures(t *testing.T) {
	Convey("Given a server logging to a buffer", t, func() {
		var logs bytes.Buffer
		s, _ := newLoggedServer(t, ":0", zerolog.New(&logs))
		h := s.Handler()

		Convey("When the page template fails to execute", func() {
			s.tmpl = template.Must(template.New(render.IndexTemplate).Parse(`<p>{{ .Missing }}</p>`))
			w := get(h, "/")

			Convey("Then the client gets a plain 500", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(w.Body.String(), ShouldEqual, "internal server error")
				So(w.Body.String(), ShouldNotContainSubstring, "<p>")
			})

			Convey("Then the render error is logged and not counted", func() {
				So(logs.String(), ShouldContainSubstring, `"level":"error"`)
				So(logs.String(), ShouldContainSubstring, "execute index.html")
				So(testutil.ToFloat64(s.metrics.renders.WithLabelValues("light")), ShouldEqual, 0.0)
			})
		})

		Convey("When a handler panics", func() {
			s.engine.GET("/panic", func(*gin.Context) { panic("boom") })
			w := get(h, "/panic")

			Convey("Then the panic becomes a logged 500", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(logs.String(), ShouldContainSubstring, "recovered from panic")
				So(logs.String(), ShouldContainSubstring, `"status":500`)
				So(logs.String(), ShouldContainSubstring, "panic: boom")
			})
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a server on a free local port", t, func() {
		s, _ := newLoggedServer(t, "127.0.0.1:0", zerolog.Nop())
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		done := make(chan error, 1)
		go func() { done <- s.Run(ctx) }()

		Convey("When its context is cancelled", func() {
			time.Sleep(20 * time.Millisecond)
			cancel()

			Convey("Then it shuts down cleanly", func() {
				select {
				case err := <-done:
					So(err, ShouldBeNil)
				case <-time.After(2 * time.Second):
					So("timed out waiting for shutdown", ShouldBeEmpty)
				}
			})
		})
	})

	Convey("Given a server with an unusable address", t, func() {
		s, _ := newLoggedServer(t, "not-an-address", zerolog.Nop())

		Convey("Then Run reports the listen error", func() {
			err := s.Run(context.Background())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "listen not-an-address")
		})
	})
}

func TestUntracked(t *testing.T) {
	Convey("Given request paths", t, func() {
		So(untracked("/static/app.js"), ShouldBeTrue)
		So(untracked("/favicon.ico"), ShouldBeTrue)
		So(untracked("/metrics"), ShouldBeTrue)
		So(untracked("/"), ShouldBeFalse)
		So(untracked("/healthz"), ShouldBeFalse)
	})
}
