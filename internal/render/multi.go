package render

// Multi fans a single Draw out to several renderers, in order, stopping
// at the first error. Used by cmd/gbcore to run the ASCII terminal view
// and the periodic PNG dump side by side off one Console.
type Multi []Renderer

var _ Renderer = (Multi)(nil)

func (m Multi) Draw(frame []byte) error {
	for _, r := range m {
		if err := r.Draw(frame); err != nil {
			return err
		}
	}
	return nil
}
