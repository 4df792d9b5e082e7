package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ufoaiorg/ufoai-sub020/internal/domain"
)

// DefinitionSource is the read side of the definition tables.
type DefinitionSource interface {
	Items() []*domain.ItemDef
	Item(id string) (*domain.ItemDef, error)
	Containers() []*domain.ContainerDef
	ContainerByName(name string) (*domain.ContainerDef, error)
}

// ItemResponse describes one item definition
type ItemResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type,omitempty"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Shape      string   `json:"shape"`
	Weight     float64  `json:"weight"`
	Price      int      `json:"price"`
	Weapon     bool     `json:"weapon"`
	TwoHanded  bool     `json:"two_handed"`
	Ammo       int      `json:"ammo,omitempty"`
	ReloadTime int      `json:"reload_time,omitempty"`
	Ammos      []string `json:"ammos,omitempty"`
	Weapons    []string `json:"weapons,omitempty"`
}

// ContainerResponse describes one container definition
type ContainerResponse struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Single bool   `json:"single"`
	Scroll bool   `json:"scroll"`
	Temp   bool   `json:"temp"`
	In     int    `json:"in"`
	Out    int    `json:"out"`
}

// HandleListItems lists item definitions, optionally filtered by ?type=.
func HandleListItems(src DefinitionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := GetOptionalQueryParam(r, "type", "")

		items := make([]ItemResponse, 0, len(src.Items()))
		for _, def := range src.Items() {
			if kind != "" && def.Type != kind {
				continue
			}
			items = append(items, newItemResponse(def))
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(items), Data: items})
	}
}

// HandleGetItem returns the definition named by the {id} path parameter.
func HandleGetItem(src DefinitionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		def, err := src.Item(chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, newItemResponse(def))
	}
}

// HandleListContainers lists container definitions in id order.
func HandleListContainers(src DefinitionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defs := src.Containers()
		out := make([]ContainerResponse, 0, len(defs))
		for _, def := range defs {
			out = append(out, newContainerResponse(def))
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(out), Data: out})
	}
}

// HandleGetContainer returns the container named by the {name} path parameter.
func HandleGetContainer(src DefinitionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		def, err := src.ContainerByName(chi.URLParam(r, "name"))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetContainerFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, newContainerResponse(def))
	}
}

func newItemResponse(def *domain.ItemDef) ItemResponse {
	return ItemResponse{
		ID:         def.ID,
		Name:       def.DisplayName(),
		Type:       def.Type,
		Width:      def.Shape.Width(),
		Height:     def.Shape.Height(),
		Shape:      def.Shape.String(),
		Weight:     def.Weight,
		Price:      def.Price,
		Weapon:     def.Weapon,
		TwoHanded:  def.HoldTwoHanded,
		Ammo:       def.Ammo,
		ReloadTime: def.ReloadTime,
		Ammos:      linkedIDs(def, def.Ammos),
		Weapons:    linkedIDs(def, def.Weapons),
	}
}

// linkedIDs drops self links, which only mark weapons without separate loads.
func linkedIDs(self *domain.ItemDef, defs []*domain.ItemDef) []string {
	var ids []string
	for _, d := range defs {
		if d != self {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

func newContainerResponse(def *domain.ContainerDef) ContainerResponse {
	return ContainerResponse{
		Name:   def.Name,
		Width:  def.Shape.Width(),
		Height: def.Shape.Height(),
		Single: def.Single,
		Scroll: def.Scroll,
		Temp:   def.Temp,
		In:     def.In,
		Out:    def.Out,
	}
}
