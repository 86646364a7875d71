package history

import (
	"os"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/go-xorm/xorm"
	"github.com/pkg/errors"
	"xorm.io/xorm/names"

	"github.com/caoruixin/rex-github-sentinel/src/sort"
	"github.com/caoruixin/rex-github-sentinel/src/utils"
)

var logger = utils.GetLogger("history")

var ErrUnsupportedMeta = errors.New("unsupported meta url")

// Run is one recorded invocation of the sorter.
type Run struct {
	Id          int64     `xorm:"pk autoincr"`
	Input       []string  `xorm:"blob notnull"`
	Output      []string  `xorm:"blob notnull"`
	Passes      int       `xorm:"notnull"`
	Comparisons int       `xorm:"notnull"`
	Swaps       int       `xorm:"notnull"`
	Created     time.Time `xorm:"created"`
}

type Store struct {
	engine *xorm.Engine
}

// ParseMetaURL turns "mysql://user:pass@(host:port)/db" into a DSN for the
// MySQL driver. An empty password is taken from $META_PASSWORD.
func ParseMetaURL(uri string) (string, error) {
	p := strings.Index(uri, "://")
	if p < 0 {
		return "", errors.Errorf("invalid meta url %q: missing scheme", uri)
	}
	if scheme := uri[:p]; scheme != "mysql" {
		return "", errors.Wrapf(ErrUnsupportedMeta, "scheme %q", scheme)
	}
	addr := uri[p+3:]
	if strings.Contains(addr, "@(") {
		addr = strings.Replace(addr, "@(", "@tcp(", 1)
	} else if strings.HasPrefix(addr, "(") {
		addr = "tcp" + addr
	}

	cfg, err := mysql.ParseDSN(addr)
	if err != nil {
		return "", errors.Wrapf(err, "parse meta url %q", uri)
	}
	if cfg.Passwd == "" {
		cfg.Passwd = os.Getenv("META_PASSWORD")
	}
	cfg.ParseTime = true
	if cfg.Params == nil {
		cfg.Params = make(map[string]string)
	}
	if _, ok := cfg.Params["charset"]; !ok {
		cfg.Params["charset"] = "utf8mb4"
	}
	return cfg.FormatDSN(), nil
}

func Open(uri string) (*Store, error) {
	dsn, err := ParseMetaURL(uri)
	if err != nil {
		return nil, err
	}
	engine, err := xorm.NewEngine("mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "create engine")
	}
	if err = engine.Ping(); err != nil {
		_ = engine.Close()
		return nil, errors.Wrap(err, "ping meta")
	}
	store, err := newStore(engine)
	if err != nil {
		_ = engine.Close()
		return nil, err
	}
	logger.Debugf("history store ready at %s", redact(uri))
	return store, nil
}

func newStore(engine *xorm.Engine) (*Store, error) {
	engine.SetTableMapper(names.NewPrefixMapper(engine.GetTableMapper(), "bs_"))
	if err := engine.Sync2(new(Run)); err != nil {
		return nil, errors.Wrap(err, "sync run table")
	}
	return &Store{engine: engine}, nil
}

// Record stores a finished sort. Values are kept in their printed form so
// integers of any size come back unchanged. input must be the values as they
// were before sorting.
func (s *Store) Record(input, output []string, st sort.Stats) (*Run, error) {
	run := &Run{
		Input:       input,
		Output:      output,
		Passes:      st.Passes,
		Comparisons: st.Comparisons,
		Swaps:       st.Swaps,
	}
	if _, err := s.engine.Insert(run); err != nil {
		return nil, errors.Wrap(err, "insert run")
	}
	logger.Debugf("recorded run %d: %d values, %d swaps", run.Id, len(input), st.Swaps)
	return run, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	var runs []Run
	sess := s.engine.Desc("id")
	if limit > 0 {
		sess = sess.Limit(limit)
	}
	if err := sess.Find(&runs); err != nil {
		return nil, errors.Wrap(err, "list runs")
	}
	return runs, nil
}

func (s *Store) Close() error {
	return s.engine.Close()
}

func redact(uri string) string {
	at := strings.LastIndex(uri, "@")
	p := strings.Index(uri, "://")
	if at < 0 || p < 0 || at < p {
		return uri
	}
	cred := uri[p+3 : at]
	if c := strings.Index(cred, ":"); c >= 0 {
		cred = cred[:c] + ":****"
	}
	return uri[:p+3] + cred + uri[at:]
}
