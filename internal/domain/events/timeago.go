package events

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// relativeAge devuelve la etiqueta humana de antigüedad para el summary.
//
// days son días enteros del delta; secs es el resto dentro del día.
// Escalera (gana el primer match):
//
//	days > 29        → "weeks ago" (sin número)
//	days > 7         → "{days/7} weeks ago"
//	days > 1         → "{days} days ago"
//	secs >= 3600     → "{secs/3600} hours ago"
//	secs >= 60       → "{secs/60} minutes ago"
//	else             → "{secs} seconds ago"
//
// El divisor de semanas es 7; los > y >= son contrato visible, no
// detalle de implementación.
func relativeAge(now, ts time.Time) string {
	d := now.Sub(ts)
	if d < 0 {
		d = 0
	}

	days := int(d / day)
	secs := int((d % day) / time.Second)

	switch {
	case days > 29:
		return "weeks ago"
	case days > 7:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days > 1:
		return fmt.Sprintf("%d days ago", days)
	case secs >= 3600:
		return fmt.Sprintf("%d hours ago", secs/3600)
	case secs >= 60:
		return fmt.Sprintf("%d minutes ago", secs/60)
	default:
		return fmt.Sprintf("%d seconds ago", secs)
	}
}
