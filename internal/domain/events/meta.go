package events

// Meta es la unión cerrada de payloads por tipo de evento.
// Una variante por tipo; Litter no tiene meta (Event.Meta == nil).
// Los valores se guardan como texto tal como llegan del formulario:
// la fábrica no valida rangos numéricos.
type Meta interface {
	EventType() EventType

	// Map devuelve exactamente los campos que la fábrica seteó,
	// sin claves extra (vista serializable del meta).
	Map() map[string]string
}

type FoodMeta struct {
	Name     string
	FoodType string // wet, dry, treats, other
	Amount   string
	Unit     string // grams, cups, oz, cans
	Calories string
}

func (FoodMeta) EventType() EventType { return EventTypeFood }

func (m FoodMeta) Map() map[string]string {
	return map[string]string{
		"name":     m.Name,
		"type":     m.FoodType,
		"amount":   m.Amount,
		"unit":     m.Unit,
		"calories": m.Calories,
	}
}

type MedicineMeta struct {
	Name string
	Dose string
}

func (MedicineMeta) EventType() EventType { return EventTypeMedicine }

func (m MedicineMeta) Map() map[string]string {
	return map[string]string{
		"name": m.Name,
		"dose": m.Dose,
	}
}

type VitalsMeta struct {
	Kind  string // weight, length
	Value string
	Unit  string
}

func (VitalsMeta) EventType() EventType { return EventTypeVitals }

func (m VitalsMeta) Map() map[string]string {
	return map[string]string{
		"kind":  m.Kind,
		"value": m.Value,
		"unit":  m.Unit,
	}
}

// MetaMap es Map() tolerante a nil (Litter).
func MetaMap(m Meta) map[string]string {
	if m == nil {
		return nil
	}
	return m.Map()
}
