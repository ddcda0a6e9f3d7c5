package backoffice

// Op mutación exitosa que dispara efectos.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// EffectKind tipo de efecto posterior a una mutación.
type EffectKind int

const (
	EffectRefreshGrid EffectKind = iota
	EffectReloadLookup
)

// Effect efecto declarado. Lookup aplica solo a EffectReloadLookup.
type Effect struct {
	Kind   EffectKind
	Lookup string
}

// RefreshGrid vuelve a pedir la ventana actual de la grilla.
func RefreshGrid() Effect { return Effect{Kind: EffectRefreshGrid} }

// ReloadLookup recarga la lista de lookup indicada.
func ReloadLookup(name string) Effect { return Effect{Kind: EffectReloadLookup, Lookup: name} }

// Effects efectos por operación, ejecutados en orden de declaración tras el callback de éxito.
type Effects map[Op][]Effect

// DefaultEffects refresca la grilla tras cualquier mutación y recarga las listas indicadas.
func DefaultEffects(lookups ...string) Effects {
	list := []Effect{RefreshGrid()}
	for _, name := range lookups {
		list = append(list, ReloadLookup(name))
	}
	return Effects{OpCreate: list, OpUpdate: list, OpDelete: list}
}
