package audio

import (
	"errors"
	"io"
	"testing"
)

// stubDecoder returns a fixed silent source.
type stubDecoder struct{}

func (stubDecoder) Decode(r io.Reader) (Source, error) {
	return newSilentSource(44100, 2, 100), nil
}

// failingDecoder always returns an error.
type failingDecoder struct{}

func (failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	dec := stubDecoder{}

	reg.Register("ogg", dec)

	got, ok := reg.Get("ogg")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != Decoder(dec) {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	if _, ok := reg.Get("flac"); ok {
		t.Error("Registry.Get() returned ok=true for unregistered extension")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", stubDecoder{})
	reg.Register("wav", failingDecoder{})

	got, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}
	if _, isFailing := got.(failingDecoder); !isFailing {
		t.Error("Registry.Register() did not replace existing decoder")
	}
}
