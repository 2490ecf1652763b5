// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import "fmt"

// animeSubquery defines the common GraphQL selection set for anime metadata retrieval.
var animeSubquery = `
id
title {
	romaji
	english
	native
}
episodes
coverImage {
	extraLarge
}
averageScore
`

// searchByIDQuery defines the GraphQL query for retrieving a specific anime by its identifier.
var searchByIDQuery = fmt.Sprintf(`
query ($id: Int) {
	Media (id: $id, type: ANIME) {
		%s
	}
}`, animeSubquery)
