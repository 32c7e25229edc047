// Package fake генерирует случайные, но внутренне согласованные данные
// для утилиты наполнения базы: имена, адреса электронной почты,
// почтовые адреса и тексты.
package fake

import (
	"fmt"
	"math/rand"
	"strings"
)

// Generator — источник случайных тестовых данных. Не потокобезопасен:
// утилита наполнения базы работает в один поток.
type Generator struct {
	rng      *rand.Rand
	emailSeq int
}

// New создает Generator с заданным зерном.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "Daniel", "Susan", "Thomas", "Jessica",
	"Andrew", "Sarah", "Peter", "Karen", "Olivia", "Emma",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor",
	"Thomas", "Moore", "Jackson", "Martin", "Lee", "Walker", "Hall",
}

var emailDomains = []string{"example.com", "example.org", "example.net"}

var streetNames = []string{
	"Pine Rd", "Oak St", "Maple Ave", "Cedar Ln", "Elm St", "Birch Way",
	"Lakeview Dr", "Hillcrest Rd", "Sunset Blvd", "River St",
}

var cities = []string{
	"Bend", "Austin", "Denver", "Portland", "Madison", "Boulder",
	"Savannah", "Asheville", "Tucson", "Boise",
}

var states = []string{"OR", "TX", "CO", "WA", "WI", "AZ", "GA", "NC", "ID", "CA"}

var countries = []string{"US", "CA", "MX", "FR", "DE", "ES", "IT", "PT", "JP", "AU"}

var words = []string{
	"cozy", "spacious", "quiet", "sunny", "modern", "rustic", "charming",
	"apartment", "cabin", "loft", "cottage", "studio", "villa", "house",
	"near", "downtown", "beach", "forest", "mountain", "lake", "garden",
	"with", "view", "terrace", "fireplace", "pool", "parking", "wifi",
}

// FirstName возвращает случайное имя.
func (g *Generator) FirstName() string {
	return firstNames[g.rng.Intn(len(firstNames))]
}

// LastName возвращает случайную фамилию.
func (g *Generator) LastName() string {
	return lastNames[g.rng.Intn(len(lastNames))]
}

// Email возвращает уникальный в рамках генератора адрес электронной почты.
func (g *Generator) Email() string {
	g.emailSeq++
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(g.FirstName()),
		strings.ToLower(g.LastName()),
		g.emailSeq,
		emailDomains[g.rng.Intn(len(emailDomains))])
}

// PhoneNumber возвращает случайный телефонный номер.
func (g *Generator) PhoneNumber() string {
	return fmt.Sprintf("+1%03d%03d%04d",
		g.rng.Intn(800)+200, g.rng.Intn(1000), g.rng.Intn(10000))
}

// StreetAddress возвращает случайный адрес: номер дома и улицу.
func (g *Generator) StreetAddress() string {
	return fmt.Sprintf("%d %s", g.rng.Intn(9999)+1, streetNames[g.rng.Intn(len(streetNames))])
}

// City возвращает случайный город.
func (g *Generator) City() string {
	return cities[g.rng.Intn(len(cities))]
}

// State возвращает случайный код региона.
func (g *Generator) State() string {
	return states[g.rng.Intn(len(states))]
}

// PostalCode возвращает случайный почтовый индекс.
func (g *Generator) PostalCode() string {
	return fmt.Sprintf("%05d", g.rng.Intn(100000))
}

// Country возвращает случайный код страны.
func (g *Generator) Country() string {
	return countries[g.rng.Intn(len(countries))]
}

// Sentence возвращает предложение из n случайных слов.
// При n <= 0 возвращается пустая строка.
func (g *Generator) Sentence(n int) string {
	if n <= 0 {
		return ""
	}
	parts := make([]string, 0, n)
	for range n {
		parts = append(parts, words[g.rng.Intn(len(words))])
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:]
}

// Paragraph возвращает текст из n предложений по 5-10 слов.
func (g *Generator) Paragraph(n int) string {
	sentences := make([]string, 0, n)
	for range n {
		sentences = append(sentences, g.Sentence(g.rng.Intn(6)+5)+".")
	}
	return strings.Join(sentences, " ")
}

// IntRange возвращает случайное число из [min, max].
func (g *Generator) IntRange(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

// Pick возвращает случайный элемент среза.
func (g *Generator) Pick(items []string) string {
	return items[g.rng.Intn(len(items))]
}

// Bool возвращает true с вероятностью p (0..1).
func (g *Generator) Bool(p float64) bool {
	return g.rng.Float64() < p
}
