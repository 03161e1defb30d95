package props

import "strings"

// DatabaseType is the inferred kind of backing datastore.
type DatabaseType string

const (
	DatabasePostgreSQL DatabaseType = "PostgreSQL"
	DatabaseMySQL      DatabaseType = "MySQL"
	DatabaseOracle     DatabaseType = "Oracle"
	DatabaseSQLServer  DatabaseType = "SQL Server"
	DatabaseH2         DatabaseType = "H2"
	DatabaseMongoDB    DatabaseType = "MongoDB"
	DatabaseGeneric    DatabaseType = "Database"
	DatabaseNone       DatabaseType = ""
)

// Database describes the datastore a service is configured against.
type Database struct {
	Type DatabaseType `json:"type,omitempty"`
	URL  string       `json:"url,omitempty"`
}

// datasourceURLKeys are checked in order; the first key present decides the
// connection URL used for type inference.
var datasourceURLKeys = []string{
	"spring.datasource.url",
	"spring.r2dbc.url",
	"datasource.url",
}

// portKeys are checked in order for the server port.
var portKeys = []string{
	"server.port",
	"port",
}

// urlMarkers maps URL substrings to database types, checked in order.
var urlMarkers = []struct {
	marker string
	dbType DatabaseType
}{
	{"postgresql", DatabasePostgreSQL},
	{"mysql", DatabaseMySQL},
	{"oracle", DatabaseOracle},
	{"sqlserver", DatabaseSQLServer},
	{"h2", DatabaseH2},
	{"mongodb", DatabaseMongoDB},
}

// InferDatabase determines the database type from the merged configuration.
// The datasource URL is inspected first; a JPA/Hibernate dialect key alone
// yields a generic database; MongoDB URI/host keys override everything.
func (p Properties) InferDatabase() Database {
	var db Database

	for _, key := range datasourceURLKeys {
		url, ok := p[key]
		if !ok {
			continue
		}
		db.URL = url
		db.Type = DatabaseGeneric
		lower := strings.ToLower(url)
		for _, m := range urlMarkers {
			if strings.Contains(lower, m.marker) {
				db.Type = m.dbType
				break
			}
		}
		break
	}

	if db.Type == DatabaseNone {
		if _, ok := p["spring.jpa.database-platform"]; ok {
			db.Type = DatabaseGeneric
		} else if _, ok := p["spring.jpa.hibernate.ddl-auto"]; ok {
			db.Type = DatabaseGeneric
		}
	}

	if _, ok := p["spring.data.mongodb.uri"]; ok {
		db.Type = DatabaseMongoDB
	} else if _, ok := p["spring.data.mongodb.host"]; ok {
		db.Type = DatabaseMongoDB
	}

	return db
}

// Port returns the configured server port, or "unknown" when no port key
// is present.
func (p Properties) Port() string {
	for _, key := range portKeys {
		if v, ok := p[key]; ok && v != "" {
			return v
		}
	}
	return "unknown"
}
