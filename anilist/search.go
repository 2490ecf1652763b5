// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/anilink-cli/anilink/constant"
	"github.com/anilink-cli/anilink/log"
	"github.com/anilink-cli/anilink/network"
)

// Endpoint is the GraphQL URL queried for metadata. Tests override it.
var Endpoint = constant.AnilistURL

// searchByIDResponse defines the anticipated JSON response structure for anime-by-id lookups.
type searchByIDResponse struct {
	Data struct {
		Media *Anime `json:"Media"`
	} `json:"data"`
}

// GetByID returns the anime with the given id.
// Any transport error, non-success status, decode failure, or missing Media
// record is reported as an error; callers treat all of them as "unavailable".
func GetByID(id int) (*Anime, error) {
	if anime := idCacher.Get(id); anime.IsPresent() {
		return anime.MustGet(), nil
	}

	// Prepare request body for GraphQL query.
	log.Infof("Searching anilist for anime with id: %d", id)
	body := map[string]interface{}{
		"query": searchByIDQuery,
		"variables": map[string]interface{}{
			"id": id,
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, Endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error(err)
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := network.Client.Do(req)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("Anilist returned status code " + strconv.Itoa(resp.StatusCode))
		return nil, fmt.Errorf("invalid response code %d", resp.StatusCode)
	}

	// Decode the JSON response into the response structure.
	var response searchByIDResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Error(err)
		return nil, err
	}

	anime := response.Data.Media
	if anime == nil {
		log.Errorf("Anilist has no media record for id %d", id)
		return nil, fmt.Errorf("no media record for id %d", id)
	}

	log.Infof("Got response from Anilist, found anime with id %d", anime.ID)
	_ = idCacher.Set(id, anime)
	return anime, nil
}
