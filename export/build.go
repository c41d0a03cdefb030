package export

import "sqlmondeck/deck"

// Build renders the deck and applies the finishing pass. A nil theme keeps the theme written by
// the authoring library.
func Build(d *deck.Deck, theme []byte) ([]byte, error) {
	raw, err := RenderPPTX(d)
	if err != nil {
		return nil, err
	}
	return Finish(raw, d, FinishOptions{Theme: theme})
}
