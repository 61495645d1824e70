package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// WriteJSONError sends a JSON response with an "error" field and the given
// status code.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON sends a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// GetPageOrDefault reads the "page" query parameter, clamping to 1.
func GetPageOrDefault(query url.Values) int {
	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	return page
}

// GetPerPageOrDefault reads the "resultsPerPage" query parameter, falling
// back to def and clamping to max.
func GetPerPageOrDefault(query url.Values, def, max int) int {
	perPage, _ := strconv.Atoi(query.Get("resultsPerPage"))
	if perPage < 1 {
		return def
	}
	if perPage > max {
		return max
	}
	return perPage
}

func parseFloat(query url.Values, key string) float64 {
	v, _ := strconv.ParseFloat(query.Get(key), 64)
	return v
}

func parseInt(query url.Values, key string) int {
	v, _ := strconv.Atoi(query.Get(key))
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
