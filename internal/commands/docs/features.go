package docscmd

// FeatureGates exposes runtime feature toggles required by docs command
// handlers. Callers should supply closures that read from the module
// configuration so handlers stay decoupled from it while honouring flags.
type FeatureGates struct {
	PreviewEnabled func() bool
}

func (g FeatureGates) previewEnabled() bool {
	if g.PreviewEnabled == nil {
		return true
	}
	return g.PreviewEnabled()
}
