package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	v := Ptr("scheduled")
	assert.Equal(t, "scheduled", *v)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "scheduled", Deref(Ptr("scheduled")))

	var missing *string
	assert.Equal(t, "", Deref(missing))

	var count *int
	assert.Equal(t, 0, Deref(count))
}
