package events

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")

// Service es el registro y el motor de agregación de eventos.
// Todas las vistas son read-only y de un solo household; un household
// vacío devuelve resultados vacíos, nunca error. Los errores del
// storage se propagan tal cual (acá no hay retries).
type Service struct {
	repo Repository
	pets PetDirectory
	loc  *time.Location
	now  func() time.Time
}

// NewService recibe la zona horaria de la app explícita; nada de
// estado global (los límites de día y el "now" del summary dependen
// de loc).
func NewService(repo Repository, pets PetDirectory, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo: repo,
		pets: pets,
		loc:  loc,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

// Now devuelve la hora actual en la zona de la app.
func (s *Service) Now() time.Time { return s.now() }

// Location devuelve la zona horaria configurada de la app.
func (s *Service) Location() *time.Location { return s.loc }

// Log valida lo mínimo, construye el evento por la fábrica y lo
// persiste. ErrInvalidEventType sube tal cual: el boundary decide
// (400, no fatal).
func (s *Service) Log(ctx context.Context, householdID, createdBy string, typ EventType, payload map[string]string, ts *time.Time) (*Event, error) {
	if strings.TrimSpace(householdID) == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(createdBy) == "" {
		return nil, ErrInvalidInput
	}

	e, err := NewEvent(householdID, createdBy, typ, payload, ts, s.now)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// EventRow es una fila del listado plano (historial completo).
type EventRow struct {
	Timestamp time.Time         `json:"timestamp"`
	PetName   string            `json:"pet-name"`
	PetIcon   string            `json:"pet-icon"`
	Type      EventType         `json:"type"`
	Meta      map[string]string `json:"meta"`
}

// AllEvents devuelve todos los eventos del household, más reciente
// primero, con nombre/ícono de mascota resueltos ('' cuando no hay).
func (s *Service) AllEvents(ctx context.Context, householdID string) ([]EventRow, error) {
	if strings.TrimSpace(householdID) == "" {
		return []EventRow{}, nil
	}

	evs, err := s.repo.ListByHousehold(ctx, householdID, ListFilter{})
	if err != nil {
		return nil, err
	}

	dir, err := s.petDir(ctx, householdID)
	if err != nil {
		return nil, err
	}

	out := make([]EventRow, 0, len(evs))
	for _, e := range evs {
		info := lookupPet(dir, e.PetID)
		out = append(out, EventRow{
			Timestamp: e.Timestamp,
			PetName:   info.Name,
			PetIcon:   info.Icon,
			Type:      e.Type,
			Meta:      MetaMap(e.Meta),
		})
	}
	return out, nil
}

// SummaryRow es el evento más reciente de un par (tipo, mascota).
type SummaryRow struct {
	Type    EventType         `json:"type"`
	PetName string            `json:"pet-name"`
	PetIcon string            `json:"pet-icon"`
	TimeAgo string            `json:"time_ago"`
	Meta    map[string]string `json:"meta"`
}

// Summary devuelve, por cada par (tipo, mascota) con eventos, solo el
// más reciente, etiquetado con antigüedad relativa contra now.
func (s *Service) Summary(ctx context.Context, householdID string) ([]SummaryRow, error) {
	if strings.TrimSpace(householdID) == "" {
		return []SummaryRow{}, nil
	}

	evs, err := s.repo.ListByHousehold(ctx, householdID, ListFilter{})
	if err != nil {
		return nil, err
	}

	dir, err := s.petDir(ctx, householdID)
	if err != nil {
		return nil, err
	}

	// El repo ya ordena por timestamp desc: la primera aparición de
	// cada par es la ganadora.
	now := s.now()
	seen := map[string]bool{}
	out := make([]SummaryRow, 0)
	for _, e := range evs {
		pid := ""
		if e.PetID != nil {
			pid = *e.PetID
		}
		k := string(e.Type) + "\x00" + pid
		if seen[k] {
			continue
		}
		seen[k] = true

		info := lookupPet(dir, e.PetID)
		out = append(out, SummaryRow{
			Type:    e.Type,
			PetName: info.Name,
			PetIcon: info.Icon,
			TimeAgo: relativeAge(now, e.Timestamp),
			Meta:    MetaMap(e.Meta),
		})
	}

	// Orden estable (tipo, mascota) para la UI.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].PetName < out[j].PetName
	})

	return out, nil
}

// PetKey identifica el balde de agregación: (nombre, ícono).
type PetKey struct {
	Name string
	Icon string
}

// petKeySep separa nombre e ícono al aplanar la clave para JSON.
// Tres caracteres que no aparecen ni en nombres ni en rutas de fotos.
const petKeySep = "|||"

func (k PetKey) Flatten() string {
	return k.Name + petKeySep + k.Icon
}

// DayAggregate es la vista de un día calendario: Food suma calorías,
// el resto cuenta eventos. Un tipo sin eventos queda con mapa nil
// (se omite, no se materializa vacío).
type DayAggregate struct {
	Food     map[PetKey]float64
	Litter   map[PetKey]int
	Medicine map[PetKey]int
	Vitals   map[PetKey]int
}

// DayView agrega los eventos del día calendario que contiene date
// (medianoche local a medianoche siguiente, en la zona de la app).
func (s *Service) DayView(ctx context.Context, householdID string, date time.Time) (DayAggregate, error) {
	var agg DayAggregate
	if strings.TrimSpace(householdID) == "" {
		return agg, nil
	}

	start := s.midnight(date)
	end := start.AddDate(0, 0, 1)

	evs, err := s.repo.ListByHousehold(ctx, householdID, ListFilter{From: &start, To: &end})
	if err != nil {
		return agg, err
	}

	dir, err := s.petDir(ctx, householdID)
	if err != nil {
		return agg, err
	}

	for _, e := range evs {
		key := petKeyFor(dir, e.PetID)
		switch e.Type {
		case EventTypeFood:
			if agg.Food == nil {
				agg.Food = map[PetKey]float64{}
			}
			agg.Food[key] += parseCalories(e.Meta)
		case EventTypeLitter:
			if agg.Litter == nil {
				agg.Litter = map[PetKey]int{}
			}
			agg.Litter[key]++
		case EventTypeMedicine:
			if agg.Medicine == nil {
				agg.Medicine = map[PetKey]int{}
			}
			agg.Medicine[key]++
		case EventTypeVitals:
			if agg.Vitals == nil {
				agg.Vitals = map[PetKey]int{}
			}
			agg.Vitals[key]++
		}
	}

	return agg, nil
}

// MedicineRecord es el detalle {nombre, dosis} que la vista multi-día
// conserva por mascota (el tile del dashboard usa solo el conteo).
type MedicineRecord struct {
	Name string `json:"name"`
	Dose string `json:"dose"`
}

// DayRecord es un día con eventos dentro de DaysView. Las claves de
// mascota van aplanadas a "nombre|||ícono" para serializar.
type DayRecord struct {
	Label string `json:"date"`     // "Today", "Yesterday" o "Jan 02"
	Date  string `json:"date_iso"` // YYYY-MM-DD

	Food     map[string]float64          `json:"food,omitempty"`
	Litter   map[string]int              `json:"litter,omitempty"`
	Medicine map[string][]MedicineRecord `json:"medicine,omitempty"`
	Vitals   map[string]int              `json:"vitals,omitempty"`
}

// DaysView camina hacia atrás de a un día desde start y junta los
// días con al menos un evento, hasta `limit` días con datos o hasta
// haber examinado 2×limit días (lo que ocurra primero: el tope evita
// escanear huecos largos sin eventos). Más reciente primero.
func (s *Service) DaysView(ctx context.Context, householdID string, start time.Time, limit int) ([]DayRecord, error) {
	out := make([]DayRecord, 0)
	if strings.TrimSpace(householdID) == "" {
		return out, nil
	}
	if limit <= 0 {
		limit = 10
	}

	dir, err := s.petDir(ctx, householdID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	current := s.midnight(start)

	for i := 0; i < limit*2; i++ {
		if len(out) >= limit {
			break
		}

		dayStart := current
		dayEnd := dayStart.AddDate(0, 0, 1)

		evs, err := s.repo.ListByHousehold(ctx, householdID, ListFilter{From: &dayStart, To: &dayEnd})
		if err != nil {
			return nil, err
		}

		if len(evs) > 0 {
			out = append(out, s.dayRecord(dayStart, now, evs, dir))
		}

		current = current.AddDate(0, 0, -1)
	}

	return out, nil
}

func (s *Service) dayRecord(dayStart, now time.Time, evs []Event, dir map[string]PetInfo) DayRecord {
	rec := DayRecord{
		Label: dayLabel(dayStart, now),
		Date:  dayStart.Format("2006-01-02"),
	}

	for _, e := range evs {
		key := petKeyFor(dir, e.PetID).Flatten()
		switch e.Type {
		case EventTypeFood:
			if rec.Food == nil {
				rec.Food = map[string]float64{}
			}
			rec.Food[key] += parseCalories(e.Meta)
		case EventTypeLitter:
			if rec.Litter == nil {
				rec.Litter = map[string]int{}
			}
			rec.Litter[key]++
		case EventTypeMedicine:
			if rec.Medicine == nil {
				rec.Medicine = map[string][]MedicineRecord{}
			}
			m, _ := e.Meta.(MedicineMeta)
			rec.Medicine[key] = append(rec.Medicine[key], MedicineRecord{
				Name: m.Name,
				Dose: m.Dose,
			})
		case EventTypeVitals:
			if rec.Vitals == nil {
				rec.Vitals = map[string]int{}
			}
			rec.Vitals[key]++
		}
	}

	return rec
}

func dayLabel(dayStart, now time.Time) string {
	y, m, d := dayStart.Date()
	ny, nm, nd := now.Date()
	if y == ny && m == nm && d == nd {
		return "Today"
	}
	yy, ym, yd := now.AddDate(0, 0, -1).Date()
	if y == yy && m == ym && d == yd {
		return "Yesterday"
	}
	return dayStart.Format("Jan 02")
}

// midnight trunca a medianoche local del día calendario de t.
func (s *Service) midnight(t time.Time) time.Time {
	t = t.In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

func (s *Service) petDir(ctx context.Context, householdID string) (map[string]PetInfo, error) {
	if s.pets == nil {
		return map[string]PetInfo{}, nil
	}
	return s.pets.ByHousehold(ctx, householdID)
}

func lookupPet(dir map[string]PetInfo, petID *string) PetInfo {
	if petID == nil {
		return PetInfo{}
	}
	return dir[*petID]
}

func petKeyFor(dir map[string]PetInfo, petID *string) PetKey {
	info := lookupPet(dir, petID)
	return PetKey{Name: info.Name, Icon: info.Icon}
}

// parseCalories: calorías ausentes o no numéricas aportan 0.
func parseCalories(m Meta) float64 {
	fm, ok := m.(FoodMeta)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(fm.Calories), 64)
	if err != nil {
		return 0
	}
	return v
}
