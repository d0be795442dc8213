package axis

import (
	"fmt"
	"strconv"
)

// Axis is an ordered, deduplicated set of categorical keys with display labels.
//
// The zero value is not usable; create axes with [New]. An Axis is not safe
// for concurrent mutation, but may be read from multiple goroutines once
// construction is finished.
type Axis[K comparable] struct {
	title   string
	keys    []K
	labels  []string
	index   map[K]int
	labeler func(K) string
}

// New creates an empty axis with the given title. An empty title means the
// axis title is not drawn.
func New[K comparable](title string) *Axis[K] {
	return &Axis[K]{
		title: title,
		index: make(map[K]int),
	}
}

// WithLabeler sets the function [Axis.AddKeys] uses to derive labels.
// The default labeler formats keys with fmt.Sprint.
func (a *Axis[K]) WithLabeler(fn func(K) string) *Axis[K] {
	a.labeler = fn
	return a
}

// Add appends key with the given label and returns the axis for chaining.
// If key is already present the call has no effect.
func (a *Axis[K]) Add(key K, label string) *Axis[K] {
	if _, ok := a.index[key]; ok {
		return a
	}
	a.index[key] = len(a.keys)
	a.keys = append(a.keys, key)
	a.labels = append(a.labels, label)
	return a
}

// AddKeys adds each key with a label produced by the axis labeler.
func (a *Axis[K]) AddKeys(keys ...K) *Axis[K] {
	for _, k := range keys {
		a.Add(k, a.label(k))
	}
	return a
}

func (a *Axis[K]) label(k K) string {
	if a.labeler != nil {
		return a.labeler(k)
	}
	return fmt.Sprint(k)
}

// IndexOf returns the dense index of key, or false if key is absent.
func (a *Axis[K]) IndexOf(key K) (int, bool) {
	i, ok := a.index[key]
	return i, ok
}

// LabelOf returns the display label of key, or false if key is absent.
func (a *Axis[K]) LabelOf(key K) (string, bool) {
	i, ok := a.index[key]
	if !ok {
		return "", false
	}
	return a.labels[i], true
}

// Contains reports whether key has been added.
func (a *Axis[K]) Contains(key K) bool {
	_, ok := a.index[key]
	return ok
}

// Count returns the number of distinct keys.
func (a *Axis[K]) Count() int { return len(a.keys) }

// Title returns the axis title.
func (a *Axis[K]) Title() string { return a.title }

// SetTitle replaces the axis title.
func (a *Axis[K]) SetTitle(title string) { a.title = title }

// Labels returns the labels in index order. The slice is a copy.
func (a *Axis[K]) Labels() []string {
	out := make([]string, len(a.labels))
	copy(out, a.labels)
	return out
}

// Keys returns the keys in index order. The slice is a copy.
func (a *Axis[K]) Keys() []K {
	out := make([]K, len(a.keys))
	copy(out, a.keys)
	return out
}

// Ints returns an axis over the inclusive integer range [min, max], labelled
// with the decimal form of each value. If min > max the axis is empty.
func Ints(title string, min, max int) *Axis[int] {
	a := New[int](title)
	for i := min; i <= max; i++ {
		a.Add(i, strconv.Itoa(i))
		if i == max {
			break
		}
	}
	return a
}

// Strings returns an axis whose keys are also its labels.
func Strings(title string, keys ...string) *Axis[string] {
	a := New[string](title)
	for _, k := range keys {
		a.Add(k, k)
	}
	return a
}
