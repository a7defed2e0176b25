package escp

// RegionWidget is the simple content-widget interface: render yourself
// into a region of a page under construction. Implementations clip to the
// region and carry no structural invariants beyond staying inside it;
// use the Container/Label tree when fit and overlap must be validated.
type RegionWidget interface {
	Render(b *PageBuilder, region Region)
}
