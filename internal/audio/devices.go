package audio

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gordonklaus/portaudio"
)

func inputDevice(nameOrID string) (*portaudio.DeviceInfo, error) {
	if nameOrID == "" {
		return portaudio.DefaultInputDevice()
	}

	d, err := lookupDevice(nameOrID)
	if err != nil {
		return nil, fmt.Errorf("get audio input device: %w", err)
	}

	if d.MaxInputChannels < 1 {
		listDevices()
		return nil, fmt.Errorf("audio device %q is not an input device or in use by another program", d.Name)
	}

	slog.Info(fmt.Sprintf("using audio input device %q, sample rate: %d", d.Name, int(d.DefaultSampleRate)))

	return d, nil
}

func outputDevice(nameOrID string) (*portaudio.DeviceInfo, error) {
	if nameOrID == "" {
		return portaudio.DefaultOutputDevice()
	}

	d, err := lookupDevice(nameOrID)
	if err != nil {
		return nil, fmt.Errorf("get audio output device: %w", err)
	}

	if d.MaxOutputChannels < 1 {
		listDevices()
		return nil, fmt.Errorf("audio device %q is not an output device or in use by another program", d.Name)
	}

	slog.Info(fmt.Sprintf("using audio output device %q, sample rate: %d", d.Name, int(d.DefaultSampleRate)))

	return d, nil
}

// lookupDevice resolves a numeric device ID or a (partial) device name.
func lookupDevice(nameOrID string) (*portaudio.DeviceInfo, error) {
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("list available audio devices: %w", err)
	}

	id, err := strconv.Atoi(nameOrID)
	if err != nil {
		for _, d := range devices {
			if strings.Contains(d.Name, nameOrID) {
				return d, nil
			}
		}

		listDevices()

		return nil, fmt.Errorf("audio device %q not found", nameOrID)
	}

	if id < 0 || id >= len(devices) {
		listDevices()

		return nil, fmt.Errorf("audio device %d not found - please specify the ID of an existing device", id)
	}

	return devices[id], nil
}

func listDevices() {
	devices, err := portaudio.Devices()
	if err != nil {
		slog.Warn(fmt.Sprintf("get available audio devices: %s", err))
		return
	}

	fmt.Fprintln(os.Stderr, "\nAvailable audio devices:")
	fmt.Fprintf(os.Stderr, "%2s  %-55s  %2s  %3s  %s\n", "ID", "NAME", "IN", "OUT", "SAMPLERATE")
	for i, d := range devices {
		fmt.Fprintf(os.Stderr, "%2d  %-55s  %2d  %3d  %10d\n", i, d.Name, d.MaxInputChannels, d.MaxOutputChannels, int(d.DefaultSampleRate))
	}
	fmt.Fprintln(os.Stderr)
}
