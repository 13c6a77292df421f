package jsondb

import (
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/mko-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrCorrupted indica que o arquivo existe mas não é um documento JSON válido
var ErrCorrupted = errors.New("documento JSON corrompido")

// Document é o conteúdo completo do arquivo. Coleções de inserção frequente
// ficam com o item mais recente primeiro.
type Document struct {
	Users       []*domain.User       `json:"users"`
	AuthTokens  []*domain.AuthToken  `json:"auth_tokens"`
	Ads         []*domain.Listing    `json:"ads"`
	Reports     []*domain.Report     `json:"reports"`
	Contacts    []*domain.Contact    `json:"contacts"`
	AdSlots     []*domain.AdSlot     `json:"ad_slots"`
	AdCreatives []*domain.AdCreative `json:"ad_creatives"`
	AdEvents    []*domain.AdEvent    `json:"ad_events"`
}

func emptyDocument() *Document {
	doc := &Document{}
	doc.normalize()
	return doc
}

// normalize troca coleções ausentes por listas vazias
func (d *Document) normalize() {
	if d.Users == nil {
		d.Users = []*domain.User{}
	}
	if d.AuthTokens == nil {
		d.AuthTokens = []*domain.AuthToken{}
	}
	if d.Ads == nil {
		d.Ads = []*domain.Listing{}
	}
	if d.Reports == nil {
		d.Reports = []*domain.Report{}
	}
	if d.Contacts == nil {
		d.Contacts = []*domain.Contact{}
	}
	if d.AdSlots == nil {
		d.AdSlots = []*domain.AdSlot{}
	}
	if d.AdCreatives == nil {
		d.AdCreatives = []*domain.AdCreative{}
	}
	if d.AdEvents == nil {
		d.AdEvents = []*domain.AdEvent{}
	}
}

// Store serializa todo acesso ao arquivo com um único mutex. Cada operação
// lê o documento inteiro, aplica a mudança e regrava o arquivo de forma atômica.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open garante que o diretório e o arquivo existem, criando um documento vazio se preciso
func Open(path string) (*Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "caminho inválido: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, errors.Wrap(err, "erro ao criar diretório do banco JSON")
	}

	s := &Store{path: abs}

	if _, err := os.Stat(abs); errors.Is(err, os.ErrNotExist) {
		if err := s.write(emptyDocument()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, errors.Wrap(err, "erro ao verificar banco JSON")
	}

	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// View executa fn sobre uma cópia recém-lida do documento, sem gravar
func (s *Store) View(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	return fn(doc)
}

// Update executa fn e grava o documento se fn não retornar erro.
// Retornar ErrNoChange evita a regravação.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		if errors.Is(err, ErrNoChange) {
			return nil
		}
		return err
	}

	return s.write(doc)
}

// ErrNoChange sinaliza ao Update que nada precisa ser gravado
var ErrNoChange = errors.New("nenhuma alteração")

func (s *Store) read() (*Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler banco JSON")
	}

	doc := &Document{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, doc); err != nil {
			return nil, errors.Wrapf(ErrCorrupted, "%s: %v", s.path, err)
		}
	}
	doc.normalize()

	return doc, nil
}

func (s *Store) write(doc *Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar banco JSON")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".db-*.json")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "erro ao gravar banco JSON")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "erro ao fechar arquivo temporário")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "erro ao substituir banco JSON")
	}

	return nil
}
