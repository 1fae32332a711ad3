package neighborhood

import (
	"math/rand"

	"tourmovns/internal/domain"
)

// ChangeHotel is N6: replace the shared hotel with another. Attractions
// and modes are untouched — only Solution.HotelID changes — since every
// hotel↔attraction leg is looked up fresh against the catalog's travel
// matrix at evaluation time using whichever mode the day already carries
// for that leg.
type ChangeHotel struct{}

func (ChangeHotel) Name() string { return "N6-change-hotel" }

func (ChangeHotel) SampleOne(rng *rand.Rand, s domain.Solution, cat *domain.Catalog) (domain.Solution, bool) {
	alt := otherHotels(cat, s.HotelID)
	if len(alt) == 0 {
		return s, false
	}
	out := s.Clone()
	out.HotelID = alt[randIntn(rng, len(alt))]
	return out, true
}

func (ChangeHotel) Enumerate(s domain.Solution, cat *domain.Catalog) []domain.Solution {
	var out []domain.Solution
	for _, h := range otherHotels(cat, s.HotelID) {
		cand := s.Clone()
		cand.HotelID = h
		out = append(out, cand)
	}
	return out
}

func otherHotels(cat *domain.Catalog, current int) []int {
	out := make([]int, 0, len(cat.Hotels)-1)
	for i := range cat.Hotels {
		if i != current {
			out = append(out, i)
		}
	}
	return out
}
