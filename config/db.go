package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MySQLDSN resolves the data source name. A mysql:// URL is converted, any other URL value
// is used verbatim, and without a URL the DB_* parts are assembled.
func (d DatabaseConfig) MySQLDSN() (string, error) {
	raw := strings.TrimSpace(d.URL)
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	dsn := baseDSN()
	dsn.User = d.User
	dsn.Passwd = d.Pass
	dsn.Addr = d.Host + ":" + d.Port
	dsn.DBName = d.Name
	return dsn.FormatDSN(), nil
}

func baseDSN() *mysqldriver.Config {
	dsn := mysqldriver.NewConfig()
	dsn.Net = "tcp"
	dsn.ParseTime = true
	dsn.Loc = time.Local
	dsn.Params = map[string]string{"charset": "utf8mb4"}
	return dsn
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dsn := baseDSN()
	dsn.User = u.User.Username()
	dsn.Passwd, _ = u.User.Password()
	dsn.Addr = u.Hostname() + ":" + port
	dsn.DBName = dbName

	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		switch key {
		case "parseTime", "loc":
			// fixed by baseDSN
		default:
			dsn.Params[key] = values[0]
		}
	}
	return dsn.FormatDSN(), nil
}

// ConnectDatabase opens the gorm connection. Migration and seeding belong to the
// repositories package.
func ConnectDatabase(cfg DatabaseConfig, w logger.Writer) (*gorm.DB, error) {
	dsn, err := cfg.MySQLDSN()
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(w, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return db, nil
}

// ConnectMongo connects and pings within ten seconds.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}
