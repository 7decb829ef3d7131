package intent

import "github.com/planwise/orchestrator/internal/domain"

// monthNumbers maps month names and common abbreviations to month numbers.
var monthNumbers = map[string]int{
	"january": 1, "jan": 1, "february": 2, "feb": 2, "march": 3, "mar": 3,
	"april": 4, "apr": 4, "may": 5, "june": 6, "jun": 6, "july": 7, "jul": 7,
	"august": 8, "aug": 8, "september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10, "november": 11, "nov": 11, "december": 12,
	"dec": 12,
}

// paceSynonyms maps the many ways travellers describe schedule density to
// the three canonical pace values.
var paceSynonyms = map[string]domain.Pace{
	"relax": domain.PaceRelaxed, "relaxed": domain.PaceRelaxed,
	"relaxing": domain.PaceRelaxed, "chill": domain.PaceRelaxed,
	"chilled": domain.PaceRelaxed, "chilling": domain.PaceRelaxed,
	"slow": domain.PaceRelaxed, "lazy": domain.PaceRelaxed,
	"leisurely": domain.PaceRelaxed, "easy": domain.PaceRelaxed,
	"easygoing": domain.PaceRelaxed, "casual": domain.PaceRelaxed,
	"laidback": domain.PaceRelaxed,

	"moderate": domain.PaceModerate, "medium": domain.PaceModerate,
	"balanced": domain.PaceModerate, "normal": domain.PaceModerate,
	"average": domain.PaceModerate, "steady": domain.PaceModerate,

	"packed": domain.PacePacked, "fast": domain.PacePacked,
	"rush": domain.PacePacked, "rushed": domain.PacePacked,
	"busy": domain.PacePacked, "intense": domain.PacePacked,
	"active": domain.PacePacked, "aggressive": domain.PacePacked,
	"rapid": domain.PacePacked, "hectic": domain.PacePacked,
	"jampacked": domain.PacePacked, "full": domain.PacePacked,
	"nonstop": domain.PacePacked,
}

// The five canonical interest categories.
const (
	CategoryFood          = "Food and Beverage"
	CategoryEntertainment = "Entertainment"
	CategoryCulture       = "Culture and History"
	CategorySport         = "Sport"
	CategoryNature        = "Natural Place"
)

// interestKeywords maps raw interest words found in user text to the five
// canonical categories.
var interestKeywords = map[string]string{
	// Food and Beverage
	"food": CategoryFood, "beverage": CategoryFood,
	"restaurant": CategoryFood, "restaurants": CategoryFood,
	"dining": CategoryFood, "cuisine": CategoryFood,
	"coffee": CategoryFood, "cafe": CategoryFood,
	"bakery": CategoryFood, "brewery": CategoryFood,
	"winery": CategoryFood, "wine": CategoryFood,
	"beer": CategoryFood, "cocktail": CategoryFood,
	"cocktails": CategoryFood, "street food": CategoryFood,
	"brunch": CategoryFood, "dessert": CategoryFood,
	"tasting": CategoryFood, "foodie": CategoryFood,
	"culinary": CategoryFood, "distillery": CategoryFood,

	// Entertainment
	"entertainment": CategoryEntertainment, "shopping": CategoryEntertainment,
	"casino": CategoryEntertainment, "spa": CategoryEntertainment,
	"bars": CategoryEntertainment, "pubs": CategoryEntertainment,
	"nightlife": CategoryEntertainment, "clubs": CategoryEntertainment,
	"nightclub": CategoryEntertainment, "karaoke": CategoryEntertainment,
	"cinema": CategoryEntertainment, "movies": CategoryEntertainment,
	"theater": CategoryEntertainment, "theatre": CategoryEntertainment,
	"concert": CategoryEntertainment, "concerts": CategoryEntertainment,
	"live music": CategoryEntertainment, "music": CategoryEntertainment,
	"festival": CategoryEntertainment, "festivals": CategoryEntertainment,
	"amusement park": CategoryEntertainment, "theme park": CategoryEntertainment,
	"bowling": CategoryEntertainment, "escape room": CategoryEntertainment,
	"zoo": CategoryEntertainment, "aquarium": CategoryEntertainment,
	"mall": CategoryEntertainment, "markets": CategoryEntertainment,
	"wellness": CategoryEntertainment, "yoga": CategoryEntertainment,

	// Culture and History
	"culture": CategoryCulture, "history": CategoryCulture,
	"museum": CategoryCulture, "museums": CategoryCulture,
	"library": CategoryCulture, "libraries": CategoryCulture,
	"church": CategoryCulture, "churches": CategoryCulture,
	"cathedral": CategoryCulture, "temple": CategoryCulture,
	"old town": CategoryCulture, "fortress": CategoryCulture,
	"castle": CategoryCulture, "castles": CategoryCulture,
	"palace": CategoryCulture, "monument": CategoryCulture,
	"monuments": CategoryCulture, "heritage": CategoryCulture,
	"historic": CategoryCulture, "historical": CategoryCulture,
	"ruins": CategoryCulture, "archaeology": CategoryCulture,
	"art": CategoryCulture, "gallery": CategoryCulture,
	"galleries": CategoryCulture, "architecture": CategoryCulture,
	"landmark": CategoryCulture, "landmarks": CategoryCulture,
	"sightseeing": CategoryCulture, "cultural": CategoryCulture,

	// Sport
	"sport": CategorySport, "sports": CategorySport,
	"soccer": CategorySport, "football": CategorySport,
	"basketball": CategorySport, "baseball": CategorySport,
	"hockey": CategorySport, "tennis": CategorySport,
	"golf": CategorySport, "stadium": CategorySport,
	"stadiums": CategorySport, "arena": CategorySport,
	"gym": CategorySport, "fitness": CategorySport,
	"surfing": CategorySport, "skiing": CategorySport,
	"snowboarding": CategorySport, "skating": CategorySport,
	"cycling": CategorySport, "biking": CategorySport,
	"running": CategorySport, "marathon": CategorySport,
	"swimming": CategorySport, "kayaking": CategorySport,
	"climbing": CategorySport,

	// Natural Place
	"nature": CategoryNature, "national park": CategoryNature,
	"park": CategoryNature, "parks": CategoryNature,
	"beach": CategoryNature, "beaches": CategoryNature,
	"lake": CategoryNature, "lakes": CategoryNature,
	"river": CategoryNature, "fishing": CategoryNature,
	"diving": CategoryNature, "snorkeling": CategoryNature,
	"trekking": CategoryNature, "hiking": CategoryNature,
	"hike": CategoryNature, "trail": CategoryNature,
	"trails": CategoryNature, "mountain": CategoryNature,
	"mountains": CategoryNature, "forest": CategoryNature,
	"waterfall": CategoryNature, "waterfalls": CategoryNature,
	"garden": CategoryNature, "gardens": CategoryNature,
	"botanical": CategoryNature, "wildlife": CategoryNature,
	"camping": CategoryNature, "outdoors": CategoryNature,
	"outdoor": CategoryNature, "scenic": CategoryNature,
	"island": CategoryNature, "islands": CategoryNature,
	"waterfront": CategoryNature, "countryside": CategoryNature,
}
