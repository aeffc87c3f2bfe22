//go:build js && wasm

package main

import "syscall/js"

// localStorage adapts window.localStorage to records.KeyValue
type localStorage struct {
	value js.Value
}

func (storage localStorage) GetItem(key string) (string, bool) {
	if storage.value.IsUndefined() || storage.value.IsNull() {
		return "", false
	}
	item := storage.value.Call("getItem", key)
	if item.IsNull() || item.IsUndefined() {
		return "", false
	}
	return item.String(), true
}

func (storage localStorage) SetItem(key, value string) {
	if storage.value.IsUndefined() || storage.value.IsNull() {
		return
	}
	storage.value.Call("setItem", key, value)
}
