package main

import (
	"github.com/ufoaiorg/ufoai-sub020/internal/csi"
	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
	"github.com/ufoaiorg/ufoai-sub020/internal/inventory"
	"github.com/ufoaiorg/ufoai-sub020/internal/shape"
)

// containerGrid rebuilds the occupied cells of a container from a snapshot.
func containerGrid(reg *csi.Registry, def *domain.ContainerDef, view inventory.ContainerView) (shape.Grid, error) {
	var grid shape.Grid
	if def.Single {
		return grid, nil
	}
	for _, it := range view.Items {
		item, err := reg.Item(it.ID)
		if err != nil {
			return grid, err
		}
		mask := item.Shape
		if it.Rotated {
			mask = mask.Rotated()
		}
		grid.Merge(mask, it.X, it.Y)
	}
	return grid, nil
}
