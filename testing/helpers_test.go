package testing

import (
	"context"
	"reflect"
	"testing"

	"github.com/zoobzio/jam"
)

func TestSampleJSON_DecodesToSampleValue(t *testing.T) {
	v, err := jam.Decode(context.Background(), SampleJSON())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]any(SampleValue())) {
		t.Errorf("SampleJSON decodes to %#v, want SampleValue", v)
	}
}

func TestFailingCodec(t *testing.T) {
	c := &FailingCodec{}

	if _, err := c.Marshal(nil, 0); err != ErrCodec {
		t.Errorf("Marshal() error = %v, want ErrCodec", err)
	}
	var v any
	if err := c.Unmarshal([]byte("{}"), &v, 0); err != ErrCodec {
		t.Errorf("Unmarshal() error = %v, want ErrCodec", err)
	}
	if c.ContentType() == "" {
		t.Error("ContentType() should be non-empty")
	}
}
