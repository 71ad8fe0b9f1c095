package doctor

import (
	"sync"

	"github.com/micmonay/keybd_event"
)

var (
	kb     keybd_event.KeyBonding
	kbOnce sync.Once
	kbErr  error
)

// simulateChord synthesizes a Ctrl+Shift+Space press so the event check
// can run unattended.
func simulateChord() error {
	kbOnce.Do(func() {
		kb, kbErr = keybd_event.NewKeyBonding()
	})
	if kbErr != nil {
		return kbErr
	}
	kb.SetKeys(keybd_event.VK_SPACE)
	kb.HasCTRL(true)
	kb.HasSHIFT(true)
	return kb.Launching()
}
