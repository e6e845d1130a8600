package pixfmt

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes pixfmt logging into a buffer for the rest of the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestNopHandler(t *testing.T) {
	var h slog.Handler = nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("n", 1)}).(nopHandler); !ok {
		t.Error("WithAttrs() did not return a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup() did not return a nopHandler")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	if Logger().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("default logger is enabled, want silent")
	}

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))
	SetLogger(custom)
	if Logger() != custom {
		t.Error("Logger() did not return the logger passed to SetLogger")
	}

	SetLogger(nil)
	if l := Logger(); l == nil || l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore a silent logger")
	}
}

func TestConversionLogsPath(t *testing.T) {
	tests := []struct {
		name     string
		src, dst PixelFormat
		want     string
	}{
		{"same format", PF_R5G6B5, PF_R5G6B5, "path=copy"},
		{"byte shuffle", PF_BYTE_RGBA, PF_BYTE_BGRA, "path=swizzle"},
		{"generic", PF_FLOAT32_RGBA, PF_R5G6B5, "path=generic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t, slog.LevelDebug)
			src := NewPixelBox(2, 2, 1, tt.src, make([]byte, MemorySize(2, 2, 1, tt.src)))
			dst := NewPixelBox(2, 2, 1, tt.dst, make([]byte, MemorySize(2, 2, 1, tt.dst)))
			if err := BulkPixelConversion(src, dst); err != nil {
				t.Fatalf("BulkPixelConversion() = %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRefusedConversionWarns(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	comp := NewPixelBox(4, 4, 1, PF_DXT1, make([]byte, 8))
	rgba := NewPixelBox(4, 4, 1, PF_R8G8B8A8, make([]byte, 64))
	if err := BulkPixelConversion(comp, rgba); err == nil {
		t.Fatal("BulkPixelConversion(DXT1 -> R8G8B8A8) = nil, want error")
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("log = %q, want a warning", buf.String())
	}
}

func TestSetLoggerDuringConversions(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			src := NewPixelBox(4, 1, 1, PF_BYTE_RGBA, make([]byte, 16))
			dst := NewPixelBox(4, 1, 1, PF_A4R4G4B4, make([]byte, 8))
			if err := BulkPixelConversion(src, dst); err != nil {
				t.Errorf("BulkPixelConversion() = %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			} else {
				SetLogger(nil)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkDisabledDebug(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("pixfmt: convert", "path", "generic")
	}
}
