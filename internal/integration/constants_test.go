package integration_test

const (
	dbName         = "movie_finder"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	// Sample catalogue ids after a fresh seed
	SassyGirlId   = 1
	LittleBrideId = 2
	RomanticId    = 1
	ComedyId      = 2
	HorrorId      = 3
	SFId          = 4
)

const sassyGirlJSON = `{
	"id": 1,
	"title": "My Sassy Girl",
	"director": "Jaeyong Gwak",
	"releaseDate": "2001-07-27",
	"rating": 8,
	"country": {"code": "KR", "name": "Korea"},
	"categories": ["Comedy", "Romantic"]
}`

const littleBrideJSON = `{
	"id": 2,
	"title": "My Little Bride",
	"director": "Hojun Kim",
	"releaseDate": "2004-04-02",
	"rating": 6.9,
	"country": {"code": "KR", "name": "Korea"},
	"categories": ["Comedy", "Romantic"]
}`
