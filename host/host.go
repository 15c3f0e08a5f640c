/*
Package host describes the capabilities an embedding application lends to
scripts.

The primitives of this module never reach into a host. Runtimes built on
them receive a Capabilities value and pass its members through to scripts
unchanged. Discard is a stand-in for embedding without any host.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package host

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/npillmayer/textprim"
	"github.com/npillmayer/textprim/value"
)

// HostError is an error type for the host package.
type HostError string

func (e HostError) Error() string {
	return string(e)
}

// ErrUnsupported is returned by capabilities a host does not provide.
const ErrUnsupported = HostError("host: capability not supported")

// Icon selects the decoration of a dialog.
type Icon string

// Icons a host should support.
const (
	IconInfo     Icon = "info"
	IconSuccess  Icon = "success"
	IconWarning  Icon = "warn"
	IconError    Icon = "error"
	IconQuestion Icon = "question"
)

// Output is the print sink of scripts.
type Output interface {
	Print(msg textprim.Text) error
}

// Dialog shows modal messages to a user.
type Dialog interface {
	Dialog(ctx context.Context, title, text textprim.Text, icon Icon) error
	Confirm(ctx context.Context, title, text textprim.Text, icon Icon) (bool, error)
}

// API dispatches calls to endpoints of a server. A failed call may either
// return an error or a value.Error describing the failure.
type API interface {
	Call(ctx context.Context, endpoint string, params *value.Obj, token string) (value.Value, error)
}

// Storage is a key-value store which persists across script runs.
type Storage interface {
	Save(key string, v value.Value) error
	Load(key string) (value.Value, error)
}

// Capabilities bundles what a host provides. Nil members are unsupported.
type Capabilities struct {
	Output  Output
	Dialog  Dialog
	API     API
	Storage Storage
}

// Discard is a host which drops output, rejects dialogs and API calls, and
// remembers nothing.
var Discard = Capabilities{
	Output:  discard{},
	Dialog:  discard{},
	API:     discard{},
	Storage: discard{},
}

type discard struct{}

func (discard) Print(textprim.Text) error { return nil }
func (discard) Dialog(context.Context, textprim.Text, textprim.Text, Icon) error {
	return ErrUnsupported
}
func (discard) Confirm(context.Context, textprim.Text, textprim.Text, Icon) (bool, error) {
	return false, ErrUnsupported
}
func (discard) Call(context.Context, string, *value.Obj, string) (value.Value, error) {
	return nil, ErrUnsupported
}
func (discard) Save(string, value.Value) error   { return nil }
func (discard) Load(string) (value.Value, error) { return value.Null{}, nil }

// WriterOutput prints to an io.Writer, one message per line.
type WriterOutput struct {
	W io.Writer
}

// Print writes msg followed by a line feed.
func (o WriterOutput) Print(msg textprim.Text) error {
	_, err := fmt.Fprintln(o.W, msg.String())
	return err
}

// MemoryStorage keeps values in memory. The zero value is ready to use and
// safe for concurrent use.
type MemoryStorage struct {
	mx   sync.Mutex
	vals map[string]value.Value
}

// Save stores v under key.
func (m *MemoryStorage) Save(key string, v value.Value) error {
	m.mx.Lock()
	defer m.mx.Unlock()
	if m.vals == nil {
		m.vals = make(map[string]value.Value)
	}
	m.vals[key] = v
	return nil
}

// Load returns the value stored under key, or null if there is none.
func (m *MemoryStorage) Load(key string) (value.Value, error) {
	m.mx.Lock()
	defer m.mx.Unlock()
	if v, ok := m.vals[key]; ok {
		return v, nil
	}
	return value.Null{}, nil
}
