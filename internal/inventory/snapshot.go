package inventory

// ItemView is a read-only copy of one placed item.
type ItemView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Rotated  bool   `json:"rotated,omitempty"`
	Amount   int    `json:"amount"`
	Ammo     string `json:"ammo,omitempty"`
	AmmoLeft int    `json:"ammo_left,omitempty"`
}

// ContainerView lists the items of one container in chain order.
type ContainerView struct {
	ID    string     `json:"id"`
	Items []ItemView `json:"items"`
}

// Snapshot copies the non-empty containers of inv so the result stays valid
// after the inventory is destroyed.
func Snapshot(inv *Inventory, includeTemp bool) []ContainerView {
	var out []ContainerView
	for c := range inv.Containers(includeTemp) {
		if c.Empty() {
			continue
		}
		view := ContainerView{ID: c.def.Name}
		for it := range c.All() {
			iv := ItemView{
				ID:      it.def.ID,
				Name:    it.def.DisplayName(),
				X:       it.x,
				Y:       it.y,
				Rotated: it.rotated,
				Amount:  it.amount,
			}
			if it.ammoDef != nil && it.ammoDef != it.def {
				iv.Ammo = it.ammoDef.ID
			}
			if it.ammoDef != nil {
				iv.AmmoLeft = it.ammoLeft
			}
			view.Items = append(view.Items, iv)
		}
		out = append(out, view)
	}
	return out
}
