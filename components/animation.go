package components

import "github.com/yohamta/donburi"

// ClipData is the clip clock's view of what an actor is playing.
type ClipData struct {
	Clip    string
	Elapsed float64
	Length  float64
	NextCue int
	// Finished is set once the clip has run its length and been reported.
	Finished bool
}

// Play switches to clip unless it is already playing.
func (c *ClipData) Play(clip string, length float64) {
	if c.Clip == clip {
		return
	}
	c.Clip = clip
	c.Elapsed = 0
	c.Length = length
	c.NextCue = 0
	c.Finished = false
}

// Clear stops the current clip.
func (c *ClipData) Clear() {
	c.Clip = ""
	c.Elapsed = 0
	c.Length = 0
	c.NextCue = 0
	c.Finished = false
}

var Clip = donburi.NewComponentType[ClipData]()
