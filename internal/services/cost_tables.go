package services

import "heritage-route-service/internal/domain"

// Curated per-night accommodation prices by location, in INR.
var accommodationCostsByLocation = map[string]TierPrices{
	"delhi":         {Low: 1200, Medium: 3500, High: 8500},
	"jaipur":        {Low: 800, Medium: 2500, High: 6500},
	"taj-mahal":     {Low: 900, Medium: 2800, High: 7000},
	"varanasi":      {Low: 600, Medium: 1800, High: 4500},
	"amritsar":      {Low: 700, Medium: 2000, High: 5000},
	"udaipur":       {Low: 1000, Medium: 3200, High: 8000},
	"hampi":         {Low: 500, Medium: 1500, High: 3500},
	"madurai":       {Low: 600, Medium: 1800, High: 4000},
	"bodh-gaya":     {Low: 400, Medium: 1200, High: 2800},
	"konark":        {Low: 600, Medium: 1600, High: 3500},
	"mahabalipuram": {Low: 800, Medium: 2200, High: 5500},
	"ajanta":        {Low: 600, Medium: 1600, High: 3800},
	"ellora":        {Low: 600, Medium: 1600, High: 3800},
	"khajuraho":     {Low: 700, Medium: 2000, High: 4500},
}

// Curated attraction lists with entry prices. Exploration days consume two
// attractions per day in list order.
var attractionsByLocation = map[string][]domain.Attraction{
	"delhi": {
		{Name: "Red Fort", EntryCost: 35, Duration: "3 hours"},
		{Name: "India Gate", EntryCost: 0, Duration: "1 hour"},
		{Name: "Qutub Minar", EntryCost: 30, Duration: "2 hours"},
		{Name: "Humayun's Tomb", EntryCost: 30, Duration: "2 hours"},
		{Name: "Jama Masjid", EntryCost: 0, Duration: "1 hour"},
		{Name: "Lotus Temple", EntryCost: 0, Duration: "1 hour"},
	},
	"jaipur": {
		{Name: "Hawa Mahal", EntryCost: 50, Duration: "1 hour"},
		{Name: "City Palace", EntryCost: 300, Duration: "3 hours"},
		{Name: "Amber Fort", EntryCost: 200, Duration: "4 hours"},
		{Name: "Jantar Mantar", EntryCost: 40, Duration: "1 hour"},
	},
	"taj-mahal": {
		{Name: "Taj Mahal", EntryCost: 1100, Duration: "4 hours"},
		{Name: "Agra Fort", EntryCost: 650, Duration: "3 hours"},
		{Name: "Mehtab Bagh", EntryCost: 300, Duration: "2 hours"},
	},
	"varanasi": {
		{Name: "Ganga Aarti ceremony", EntryCost: 0, Duration: "2 hours"},
		{Name: "Sunrise boat ride", EntryCost: 300, Duration: "2 hours"},
		{Name: "Sarnath", EntryCost: 25, Duration: "3 hours"},
		{Name: "Kashi Vishwanath Temple", EntryCost: 0, Duration: "2 hours"},
	},
	"udaipur": {
		{Name: "City Palace", EntryCost: 300, Duration: "3 hours"},
		{Name: "Lake Pichola boat ride", EntryCost: 400, Duration: "2 hours"},
		{Name: "Jag Mandir", EntryCost: 250, Duration: "2 hours"},
		{Name: "Saheliyon ki Bari", EntryCost: 50, Duration: "1 hour"},
	},
	"hampi": {
		{Name: "Virupaksha Temple", EntryCost: 50, Duration: "2 hours"},
		{Name: "Vittala Temple complex", EntryCost: 40, Duration: "3 hours"},
		{Name: "Stone Chariot", EntryCost: 0, Duration: "1 hour"},
		{Name: "Lotus Mahal", EntryCost: 30, Duration: "1 hour"},
	},
	"amritsar": {
		{Name: "Golden Temple", EntryCost: 0, Duration: "3 hours"},
		{Name: "Jallianwala Bagh", EntryCost: 0, Duration: "1 hour"},
		{Name: "Wagah Border ceremony", EntryCost: 0, Duration: "3 hours"},
	},
	"khajuraho": {
		{Name: "Western Group temples", EntryCost: 40, Duration: "3 hours"},
		{Name: "Kandariya Mahadeva", EntryCost: 0, Duration: "1 hour"},
		{Name: "Light and Sound show", EntryCost: 250, Duration: "1 hour"},
	},
	"konark": {
		{Name: "Sun Temple", EntryCost: 40, Duration: "3 hours"},
		{Name: "Archaeological Museum", EntryCost: 10, Duration: "1 hour"},
		{Name: "Chandrabhaga Beach", EntryCost: 0, Duration: "2 hours"},
	},
	"bodh-gaya": {
		{Name: "Mahabodhi Temple", EntryCost: 0, Duration: "3 hours"},
		{Name: "Bodhi Tree", EntryCost: 0, Duration: "1 hour"},
		{Name: "International monasteries", EntryCost: 0, Duration: "2 hours"},
	},
	"madurai": {
		{Name: "Meenakshi Temple", EntryCost: 50, Duration: "3 hours"},
		{Name: "Thirumalai Nayak Palace", EntryCost: 50, Duration: "2 hours"},
		{Name: "Gandhi Memorial Museum", EntryCost: 0, Duration: "1 hour"},
	},
	"ajanta": {
		{Name: "Cave paintings", EntryCost: 40, Duration: "4 hours"},
		{Name: "Caves 1 and 2", EntryCost: 0, Duration: "2 hours"},
		{Name: "Viewpoint", EntryCost: 0, Duration: "1 hour"},
	},
	"ellora": {
		{Name: "Kailasa Temple", EntryCost: 40, Duration: "3 hours"},
		{Name: "Buddhist caves", EntryCost: 0, Duration: "2 hours"},
		{Name: "Jain caves", EntryCost: 0, Duration: "2 hours"},
	},
	"mahabalipuram": {
		{Name: "Shore Temple", EntryCost: 40, Duration: "2 hours"},
		{Name: "Five Rathas", EntryCost: 40, Duration: "2 hours"},
		{Name: "Arjuna's Penance", EntryCost: 0, Duration: "1 hour"},
	},
}
