package sifplan

// JobConfig is a read-only view of the job configuration key-value space.
// A *viper.Viper satisfies this interface.
type JobConfig interface {
	GetString(key string) string
	GetInt(key string) int
	GetInt64(key string) int64
	GetStringSlice(key string) []string
	IsSet(key string) bool
}
