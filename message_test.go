package offscreen

import (
	"strings"
	"testing"
)

func TestDecodeSurface(t *testing.T) {
	surface := NewMemorySurface(Viewport)

	cases := []struct {
		name    string
		msg     Message
		ok      bool
		wantErr string
	}{
		{"surface", WithSurface(surface), true, ""},
		{"ready", Ready(), false, "got ready"},
		{"unclassified", Unclassified("HTMLDivElement"), false, "got HTMLDivElement"},
		{"zero", Message{}, false, "got ready"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := DecodeSurface(c.msg)
			if c.ok {
				if err != nil {
					t.Fatalf("decode: %v", err)
				}
				if s != Surface(surface) {
					t.Error("decoded surface is not the one sent")
				}
				return
			}
			if err == nil {
				t.Fatal("decode succeeded, want error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Errorf("error %q, want it to contain %q", err, c.wantErr)
			}
		})
	}
}

func TestWithSurfaceRejectsNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithSurface(nil) did not panic")
		}
	}()
	WithSurface(nil)
}
