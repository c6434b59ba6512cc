package jsonfile

import (
	"librarydesk/internal/domain/media"
)

// seedCatalog returns the dataset installed when no usable catalog file
// exists. The gap at id 3 is part of the fixed seed; the next assigned id
// starts after the highest seeded one.
func seedCatalog() map[int]media.Media {
	return map[int]media.Media{
		1: {
			ID:              1,
			Name:            "The Martian",
			Author:          "Andy Weir",
			PublicationDate: "2011-09-27",
			Category:        "Book",
		},
		2: {
			ID:              2,
			Name:            "Inception",
			Author:          "Christopher Nolan",
			PublicationDate: "2010-07-16",
			Category:        "Film",
		},
		4: {
			ID:              4,
			Name:            "Dune",
			Author:          "Frank Herbert",
			PublicationDate: "1965-08-01",
			Category:        "Book",
		},
		5: {
			ID:              5,
			Name:            "The Matrix",
			Author:          "The Wachowskis",
			PublicationDate: "1999-03-31",
			Category:        "Film",
		},
	}
}
