// Package featherlight decides whether the storefront should serve
// reduced-fidelity assets, from a user mode preference combined with a
// runtime connectivity signal.
package featherlight

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Mode is the user's persisted preference.
type Mode string

const (
	ModeOn   Mode = "on"
	ModeOff  Mode = "off"
	ModeAuto Mode = "auto"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeOn, ModeOff, ModeAuto:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown featherlight mode %q", s)
}

// Signal is a point-in-time connectivity reading. A nil *Signal means
// the connectivity API is unsupported on this client.
type Signal struct {
	EffectiveType string  `json:"effectiveType"`
	SaveData      bool    `json:"saveData"`
	DownlinkMbps  float64 `json:"downlink"`
}

// slowDownlinkMbps is the estimate below which a connection counts as
// slow in auto mode.
const slowDownlinkMbps = 1.0

// Reduced is the whole decision table. In auto mode an absent signal
// fails open to full fidelity: degrading on unknown conditions costs
// perceived quality for nothing.
func Reduced(mode Mode, sig *Signal) bool {
	switch mode {
	case ModeOn:
		return true
	case ModeOff:
		return false
	}
	if sig == nil {
		return false
	}
	return sig.SaveData ||
		sig.EffectiveType == "slow-2g" ||
		sig.EffectiveType == "2g" ||
		sig.DownlinkMbps < slowDownlinkMbps
}

// PreferenceStore persists the mode across sessions. Storage is an
// injected dependency; the controller only needs get/set of one key.
type PreferenceStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// ConnectivitySource supplies the current signal and change
// notifications. A nil source models an unsupported API.
type ConnectivitySource interface {
	Signal() *Signal
	// Subscribe registers a change callback and returns an unsubscribe
	// function.
	Subscribe(onChange func()) (unsubscribe func())
}

const prefKey = "featherlight-mode"

// Controller holds the mode preference and re-derives the active flag
// whenever the mode or the connectivity signal changes. The flag itself
// is never persisted.
type Controller struct {
	prefs  PreferenceStore
	source ConnectivitySource

	mu     sync.RWMutex
	mode   Mode
	unsub  func()
	active bool
}

// NewController loads the persisted mode (defaulting to auto) and, when
// a connectivity source is available, subscribes for re-evaluation.
func NewController(prefs PreferenceStore, source ConnectivitySource) *Controller {
	c := &Controller{prefs: prefs, source: source, mode: ModeAuto}
	if saved, ok := prefs.Get(prefKey); ok {
		if m, err := ParseMode(saved); err == nil {
			c.mode = m
		} else {
			log.Warn().Str("value", saved).Msg("ignoring invalid saved featherlight mode")
		}
	}
	c.reevaluate()
	if source != nil {
		c.unsub = source.Subscribe(c.reevaluate)
	}
	return c
}

func (c *Controller) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// SetMode updates and persists the preference, then re-derives.
func (c *Controller) SetMode(m Mode) error {
	if _, err := ParseMode(string(m)); err != nil {
		return err
	}
	c.mu.Lock()
	c.mode = m
	c.mu.Unlock()
	c.reevaluate()
	if err := c.prefs.Set(prefKey, string(m)); err != nil {
		return fmt.Errorf("persist featherlight mode: %w", err)
	}
	return nil
}

// Active reports the current reduced-fidelity decision.
func (c *Controller) Active() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Evaluate applies the decision table to the controller's mode and a
// caller-supplied signal, without touching controller state. Used when
// the signal arrives with the request rather than from a local source.
func (c *Controller) Evaluate(sig *Signal) bool {
	return Reduced(c.Mode(), sig)
}

func (c *Controller) reevaluate() {
	var sig *Signal
	if c.source != nil {
		sig = c.source.Signal()
	}
	c.mu.Lock()
	c.active = Reduced(c.mode, sig)
	c.mu.Unlock()
}

// Close detaches from the connectivity source.
func (c *Controller) Close() {
	if c.unsub != nil {
		c.unsub()
	}
}
