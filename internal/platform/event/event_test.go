// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/mhinfo/internal/platform/event"
)

func TestEvent_FIFODispatch(t *testing.T) {
	var e event.Event[string]
	var calls []string

	e.Register(func(v string) { calls = append(calls, "first:"+v) })
	e.Register(func(v string) { calls = append(calls, "second:"+v) })
	e.Raise("mhw")

	assert.Equal(t, []string{"first:mhw", "second:mhw"}, calls)
}

func TestEvent_Unregister(t *testing.T) {
	var e event.Event[int]
	var got []int

	first := e.Register(func(v int) { got = append(got, v) })
	second := e.Register(func(v int) { got = append(got, v*10) })
	e.Raise(1)
	assert.Equal(t, []int{1, 10}, got)
	got = nil

	assert.True(t, e.Unregister(first))
	assert.False(t, first.Active())
	assert.True(t, second.Active())
	assert.False(t, e.Unregister(first))

	e.Raise(3)
	assert.Equal(t, []int{30}, got)
}

func TestEvent_NilHandler(t *testing.T) {
	var e event.Event[bool]
	assert.Nil(t, e.Register(nil))
	assert.False(t, e.Unregister(nil))
	assert.NotPanics(t, func() { e.Raise(true) })
}

/*
TestEvent_UnregisterDuringDispatch checks that removal inside a handler does
not skip the remaining handlers of the current dispatch.
*/
func TestEvent_UnregisterDuringDispatch(t *testing.T) {
	var e event.Event[int]
	var calls int
	var self *event.Subscription

	self = e.Register(func(int) {
		calls++
		e.Unregister(self)
	})
	e.Register(func(int) { calls++ })

	e.Raise(1)
	assert.Equal(t, 2, calls)

	e.Raise(2)
	assert.Equal(t, 3, calls)
}
