package main

import (
	"fmt"
	"strings"
	"time"
)

type gestureKind int

const (
	gestureClick gestureKind = iota
	gestureKey
	gestureAdd
	gestureOpen
	gestureClose
	gestureSearch
	gestureWait
	gestureBuy
)

type gesture struct {
	kind gestureKind
	arg  string
	// add only
	id, name, price string
	// wait only
	wait time.Duration
}

// parseGesture reads one command line step: click:<selector>, key:<name>,
// add:<id>,<name>,<price>, buy:<catalog id>, open, close, search:<query> or
// wait:<duration>.
func parseGesture(raw string) (gesture, error) {
	verb, arg, _ := strings.Cut(raw, ":")
	switch verb {
	case "open":
		return gesture{kind: gestureOpen}, nil
	case "close":
		return gesture{kind: gestureClose}, nil
	case "click":
		if arg == "" {
			return gesture{}, fmt.Errorf("%q: click needs a selector", raw)
		}
		return gesture{kind: gestureClick, arg: arg}, nil
	case "key":
		if arg == "" {
			return gesture{}, fmt.Errorf("%q: key needs a key name", raw)
		}
		return gesture{kind: gestureKey, arg: arg}, nil
	case "search":
		return gesture{kind: gestureSearch, arg: arg}, nil
	case "add":
		// names may contain commas; id and price may not
		id, rest, ok := strings.Cut(arg, ",")
		i := strings.LastIndex(rest, ",")
		if !ok || i < 0 {
			return gesture{}, fmt.Errorf("%q: add needs id,name,price", raw)
		}
		return gesture{kind: gestureAdd, id: id, name: rest[:i], price: rest[i+1:]}, nil
	case "buy":
		if strings.TrimSpace(arg) == "" {
			return gesture{}, fmt.Errorf("%q: buy needs a product id", raw)
		}
		return gesture{kind: gestureBuy, id: strings.TrimSpace(arg)}, nil
	case "wait":
		d, err := time.ParseDuration(arg)
		if err != nil || d < 0 {
			return gesture{}, fmt.Errorf("%q: bad duration", raw)
		}
		return gesture{kind: gestureWait, wait: d}, nil
	default:
		return gesture{}, fmt.Errorf("%q: unknown gesture", raw)
	}
}

func parseGestures(args []string) ([]gesture, error) {
	out := make([]gesture, 0, len(args))
	for _, raw := range args {
		g, err := parseGesture(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func needsCatalog(gestures []gesture) bool {
	for _, g := range gestures {
		if g.kind == gestureBuy {
			return true
		}
	}
	return false
}
