package domain

// Court represents a single bookable court
type Court struct {
	ID    string
	Sport string
}

// Sport represents a sport with its courts and hourly rate
// Справочник только для чтения, загружается из конфигурации при старте
type Sport struct {
	Name          string
	HourlyRateUSD float64
	Courts        []Court
}

// CourtIDs возвращает идентификаторы кортов в порядке каталога
func (s *Sport) CourtIDs() []string {
	ids := make([]string, len(s.Courts))
	for i, c := range s.Courts {
		ids[i] = c.ID
	}
	return ids
}

// HasCourt проверяет, что корт принадлежит этому виду спорта
func (s *Sport) HasCourt(courtID string) bool {
	for _, c := range s.Courts {
		if c.ID == courtID {
			return true
		}
	}
	return false
}
