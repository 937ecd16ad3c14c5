// Package audio plays the short feedback clicks for attach and detach.
// The clips are synthesized at startup, so the demo ships no sound assets.
package audio

import (
	"bytes"
	"encoding/binary"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const sampleRate = 44100

var (
	initialized bool
	attachSound rl.Sound
	detachSound rl.Sound
)

// Init opens the audio device and builds the feedback clips.
func Init() {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return
	}
	attachSound = toneSound(880, 0.08)
	detachSound = toneSound(220, 0.12)
	initialized = true
}

func Shutdown() {
	if initialized {
		rl.UnloadSound(attachSound)
		rl.UnloadSound(detachSound)
		initialized = false
	}
	rl.CloseAudioDevice()
}

func PlayAttach() {
	if initialized {
		rl.PlaySound(attachSound)
	}
}

func PlayDetach() {
	if initialized {
		rl.PlaySound(detachSound)
	}
}

func toneSound(freq, duration float32) rl.Sound {
	data := toneWAV(freq, duration)
	wave := rl.LoadWaveFromMemory(".wav", data, int32(len(data)))
	sound := rl.LoadSoundFromWave(wave)
	rl.UnloadWave(wave)
	return sound
}

// toneWAV renders a decaying sine as a 16-bit mono RIFF/WAVE blob.
func toneWAV(freq, duration float32) []byte {
	numSamples := int(duration * sampleRate)
	dataSize := numSamples * 2

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))            // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))           // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))

	for i := 0; i < numSamples; i++ {
		t := float32(i) / sampleRate
		decay := 1 - float32(i)/float32(numSamples)
		s := math32.Sin(2*math32.Pi*freq*t) * decay * 0.4
		binary.Write(&buf, binary.LittleEndian, int16(s*32767))
	}

	return buf.Bytes()
}
