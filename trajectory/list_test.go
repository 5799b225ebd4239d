package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList_PushRespectsCapacity(t *testing.T) {
	l := NewList(3)
	for i := 0; i < 3; i++ {
		assert.True(t, l.Push(&Trajectory{XVelocity: float64(i)}))
	}
	assert.True(t, l.Full())
	assert.False(t, l.Push(&Trajectory{}))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 3, l.Cap())
}

func TestList_UnboundedAndNil(t *testing.T) {
	l := NewList(0)
	for i := 0; i < 100; i++ {
		l.Push(&Trajectory{})
	}
	assert.Equal(t, 100, l.Len())
	assert.False(t, l.Full())
	assert.False(t, l.Push(nil))
	assert.Equal(t, 100, l.Len())
}

func TestList_EachInInsertionOrder(t *testing.T) {
	l := NewList(5)
	for i := 0; i < 5; i++ {
		l.Push(&Trajectory{XVelocity: float64(i)})
	}
	var got []float64
	l.Each(func(tr *Trajectory) {
		got = append(got, tr.XVelocity)
	})
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, got)
	assert.Equal(t, 2.0, l.At(2).XVelocity)
}
