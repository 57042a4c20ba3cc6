//go:build linux

package main

import (
	"fmt"

	"github.com/holoplot/go-evdev"
)

type evdevSource struct {
	dev    *evdev.InputDevice
	name   string
	ranges map[evdev.EvCode]axisRange
	slots  map[evdev.EvCode][2]int
	cur    frame
}

var stickAxes = map[evdev.EvCode][2]int{
	evdev.ABS_X:  {0, 0},
	evdev.ABS_Y:  {0, 1},
	evdev.ABS_RX: {1, 0},
	evdev.ABS_RY: {1, 1},
}

func openSource(path string, grab bool) (frameSource, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	name, err := dev.Name()
	if err != nil {
		name = path
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("read axis info of %s: %w", path, err)
	}

	s := &evdevSource{
		dev:    dev,
		name:   name,
		ranges: make(map[evdev.EvCode]axisRange),
		slots:  make(map[evdev.EvCode][2]int),
	}
	for code, slot := range stickAxes {
		info, ok := infos[code]
		if !ok {
			continue
		}
		r := axisRange{Min: info.Minimum, Max: info.Maximum}
		s.ranges[code] = r
		s.slots[code] = slot
		s.cur[slot[0]][slot[1]] = r.normalize(info.Value)
	}
	if len(s.slots) == 0 {
		dev.Close()
		return nil, fmt.Errorf("%s reports no stick axes", path)
	}

	if grab {
		if err := dev.Grab(); err != nil {
			dev.Close()
			return nil, fmt.Errorf("grab %s: %w", path, err)
		}
	}

	return s, nil
}

func (s *evdevSource) Name() string {
	return s.name
}

// Next blocks until the device sends a SYN_REPORT and returns the axis
// values accumulated up to it.
func (s *evdevSource) Next() (frame, error) {
	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			return frame{}, err
		}

		switch ev.Type {
		case evdev.EV_ABS:
			if slot, ok := s.slots[ev.Code]; ok {
				s.cur[slot[0]][slot[1]] = s.ranges[ev.Code].normalize(ev.Value)
			}
		case evdev.EV_SYN:
			if ev.Code == evdev.SYN_REPORT {
				return s.cur, nil
			}
		}
	}
}

func (s *evdevSource) Close() error {
	return s.dev.Close()
}
