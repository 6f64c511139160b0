package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// NodeSpec describes one taxonomy level (subjects or chapters) in terms
// of the backing collection. Defaults supplies the extra fields written
// when a node has to be created; the name and parent fields are filled in
// by the resolver.
type NodeSpec struct {
	Collection  string
	NameField   string
	ParentField string
	Defaults    func(name string) map[string]any
}

// TaxonomySpec binds the two row columns carrying taxonomy names to their
// node specs. FoldCase lowercases names for both matching and creation;
// by default identity is exact equality on the trimmed value, so spellings
// differing in case resolve to distinct nodes.
type TaxonomySpec struct {
	SubjectColumn string
	ChapterColumn string
	Subject       NodeSpec
	Chapter       NodeSpec
	FoldCase      bool
}

type pairKey struct {
	subject string
	chapter string
}

// Taxonomy holds the resolved subject and chapter ids for one import run.
// It owns no state across runs; every run re-queries the store.
type Taxonomy struct {
	spec            TaxonomySpec
	subjectIDs      map[string]string
	chapterIDs      map[pairKey]string
	CreatedSubjects int
	CreatedChapters int
}

func (t *Taxonomy) key(name string) string {
	name = strings.TrimSpace(name)
	if t.spec.FoldCase {
		name = strings.ToLower(name)
	}
	return name
}

// SubjectID returns the resolved subject id for a row.
func (t *Taxonomy) SubjectID(row Row) (string, bool) {
	id, ok := t.subjectIDs[t.key(row[t.spec.SubjectColumn])]
	return id, ok
}

// ChapterID returns the resolved chapter id for a row.
func (t *Taxonomy) ChapterID(row Row) (string, bool) {
	k := pairKey{subject: t.key(row[t.spec.SubjectColumn]), chapter: t.key(row[t.spec.ChapterColumn])}
	id, ok := t.chapterIDs[k]
	return id, ok
}

// ResolveTaxonomy resolves every distinct subject and (subject, chapter)
// pair appearing in rows, creating nodes only when no exact match exists.
// Subjects are resolved fully before chapters because chapter lookups
// filter on the resolved subject id. Distinct values are processed in
// first-occurrence order, one store call at a time; running sequentially
// is what keeps check-then-create free of duplicate races.
func ResolveTaxonomy(ctx context.Context, store Store, rows []Row, spec TaxonomySpec) (*Taxonomy, error) {
	tax := &Taxonomy{
		spec:       spec,
		subjectIDs: make(map[string]string),
		chapterIDs: make(map[pairKey]string),
	}

	for _, row := range rows {
		name := tax.key(row[spec.SubjectColumn])
		if name == "" {
			continue
		}
		if _, seen := tax.subjectIDs[name]; seen {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		id, created, err := resolveNode(ctx, store, spec.Subject, name, "")
		if err != nil {
			return nil, fmt.Errorf("resolving subject %q: %w", name, err)
		}
		if created {
			tax.CreatedSubjects++
		}
		tax.subjectIDs[name] = id
	}

	for _, row := range rows {
		subjectName := tax.key(row[spec.SubjectColumn])
		chapterName := tax.key(row[spec.ChapterColumn])
		if subjectName == "" || chapterName == "" {
			continue
		}
		k := pairKey{subject: subjectName, chapter: chapterName}
		if _, seen := tax.chapterIDs[k]; seen {
			continue
		}
		subjectID, ok := tax.subjectIDs[subjectName]
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		id, created, err := resolveNode(ctx, store, spec.Chapter, chapterName, subjectID)
		if err != nil {
			return nil, fmt.Errorf("resolving chapter %q under subject %q: %w", chapterName, subjectName, err)
		}
		if created {
			tax.CreatedChapters++
		}
		tax.chapterIDs[k] = id
	}

	return tax, nil
}

func resolveNode(ctx context.Context, store Store, node NodeSpec, name, parentID string) (string, bool, error) {
	filters := map[string]any{node.NameField: name}
	if node.ParentField != "" && parentID != "" {
		filters[node.ParentField] = parentID
	}

	existing, err := store.FindOne(ctx, node.Collection, filters)
	if err == nil {
		if id, ok := existing["id"].(string); ok {
			return id, false, nil
		}
		return "", false, fmt.Errorf("existing %s record has no id", node.Collection)
	}
	if !errors.Is(err, ErrNotFound) {
		return "", false, err
	}

	fields := map[string]any{node.NameField: name}
	if node.Defaults != nil {
		for k, v := range node.Defaults(name) {
			fields[k] = v
		}
	}
	if node.ParentField != "" && parentID != "" {
		fields[node.ParentField] = parentID
	}
	id, err := store.Create(ctx, node.Collection, fields)
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}
