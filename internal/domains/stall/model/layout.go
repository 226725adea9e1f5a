package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultColumns = 8
	defaultRows    = 6
)

var demoBusinesses = []string{
	"Page Turner Books",
	"Inkwell Press",
	"Novel Ideas",
	"The Reading Nook",
	"Chapter One",
	"Bound & Gathered",
	"Margin Notes",
	"Dog-Eared Classics",
	"First Edition Finds",
	"The Paper Trail",
	"Spine & Cover",
	"Epilogue Emporium",
	"Folio Friends",
	"Quill & Parchment",
	"Hardcover Haven",
}

// DefaultLayout builds the demo hall: a fixed 48-stall grid with map
// positions pre-assigned, roughly 30% already reserved under demo vendor
// identities so the portals have something to show on first run.
func DefaultLayout(now time.Time) []Stall {
	total := defaultColumns * defaultRows
	stalls := make([]Stall, 0, total)

	for i := 0; i < total; i++ {
		col := i % defaultColumns
		row := i / defaultColumns

		size := SizeSmall
		switch {
		case col >= 6:
			size = SizeLarge
		case col >= 4:
			size = SizeMedium
		}

		stall := Stall{
			ID:     fmt.Sprintf("%c%d", rune('A'+row), col+1),
			Size:   size,
			Price:  DefaultPrice(size),
			Status: StatusAvailable,
			MapPosition: &MapPosition{
				X: 8 + float64(col)*12,
				Y: 10 + float64(row)*16,
			},
		}

		if i%10 < 3 {
			business := demoBusinesses[i%len(demoBusinesses)]
			requested := now.Add(-72 * time.Hour)
			approved := now.Add(-48 * time.Hour)

			stall.Status = StatusReserved
			stall.BusinessName = business
			stall.Email = demoEmail(business)
			stall.RequestDate = &requested
			stall.ApprovedDate = &approved
		}

		stalls = append(stalls, stall)
	}

	return stalls
}

func demoEmail(business string) string {
	local := strings.ToLower(business)
	local = strings.NewReplacer(" ", ".", "&", "and", "-", "").Replace(local)

	return local + "@example.com"
}
