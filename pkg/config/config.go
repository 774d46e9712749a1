package config

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"4"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[onlinebanking]"`
	// File redirects logs away from stderr when set.
	File string `envconfig:"FILE"`
}

// Storage locates the two data files. Relative file names are resolved against DataDir.
type Storage struct {
	DataDir          string `envconfig:"DATA_DIR"`
	AccountsFile     string `envconfig:"ACCOUNTS_FILE" default:"bank_data.txt"`
	TransactionsFile string `envconfig:"TRANSACTIONS_FILE" default:"transactions.txt"`
}

type Statement struct {
	// Dir defaults to the data directory.
	Dir    string `envconfig:"DIR"`
	Format string `envconfig:"FORMAT" default:"xlsx"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Log       *Log       `envconfig:"LOG"`
	Storage   *Storage   `envconfig:"ONLINE_BANKING"`
	Statement *Statement `envconfig:"STATEMENT"`
}
