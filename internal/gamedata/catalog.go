package gamedata

import (
	"fmt"
	"io/fs"

	"github.com/samdwyer/floorcrawl/data"
)

// Catalog holds every loaded object class, indexed by name and category.
type Catalog struct {
	classes    map[string]*ObjectClass
	categories map[string][]*ObjectClass
	order      []*ObjectClass
}

// NewCatalog validates the given classes and builds a catalog from them.
// Names must be unique, and every class named by a door or a starting
// inventory must exist.
func NewCatalog(classes []ObjectClass) (*Catalog, error) {
	c := &Catalog{
		classes:    make(map[string]*ObjectClass, len(classes)),
		categories: make(map[string][]*ObjectClass),
	}
	for i := range classes {
		class := &classes[i]
		if class.Name == "" {
			return nil, fmt.Errorf("class %d has no name", i)
		}
		if _, dup := c.classes[class.Name]; dup {
			return nil, fmt.Errorf("duplicate class %q", class.Name)
		}
		if err := class.compile(); err != nil {
			return nil, fmt.Errorf("class %q: %w", class.Name, err)
		}
		c.classes[class.Name] = class
		c.categories[class.Category] = append(c.categories[class.Category], class)
		c.order = append(c.order, class)
	}

	lookup := func(name string) (*ObjectClass, bool) {
		class, ok := c.classes[name]
		return class, ok
	}
	for _, class := range c.order {
		if class.OpensInto != "" {
			if _, ok := lookup(class.OpensInto); !ok {
				return nil, fmt.Errorf("class %q opens into %q: %w", class.Name, class.OpensInto, ErrUnknownClass)
			}
		}
		if err := class.stock(lookup); err != nil {
			return nil, fmt.Errorf("class %q: %w", class.Name, err)
		}
	}

	return c, nil
}

// LoadCatalog reads the named catalog files from fsys, in order, into one catalog.
func LoadCatalog(fsys fs.FS, files ...string) (*Catalog, error) {
	var all []ObjectClass
	for _, name := range files {
		file, err := Load[ClassesFile](fsys, name)
		if err != nil {
			return nil, err
		}
		all = append(all, file.Classes...)
	}
	return NewCatalog(all)
}

// LoadDefaultCatalog loads the catalogs embedded in the binary.
func LoadDefaultCatalog() (*Catalog, error) {
	return LoadCatalog(data.FS(), data.CatalogFiles...)
}

// MustLoadDefaultCatalog loads the embedded catalogs, panicking on error.
func MustLoadDefaultCatalog() *Catalog {
	catalog, err := LoadDefaultCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Class returns the class with the given name.
func (c *Catalog) Class(name string) (*ObjectClass, error) {
	class, ok := c.classes[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownClass)
	}
	return class, nil
}

// MustClass returns the class with the given name. A missing class means a
// broken content file, so it panics.
func (c *Catalog) MustClass(name string) *ObjectClass {
	class, err := c.Class(name)
	if err != nil {
		panic(err)
	}
	return class
}

// Category returns the classes tagged with category, in load order.
func (c *Catalog) Category(category string) []*ObjectClass {
	return c.categories[category]
}

// Randomizer returns a weighted sampler over category, or nil when the
// category has no classes with a positive chance.
func (c *Catalog) Randomizer(category string) *Randomizer {
	return NewRandomizer(c.categories[category])
}

// MustRandomizer is Randomizer for categories the game cannot do without.
func (c *Catalog) MustRandomizer(category string) *Randomizer {
	r := c.Randomizer(category)
	if r == nil {
		panic(fmt.Errorf("%q: %w", category, ErrUnknownCategory))
	}
	return r
}

// Count returns the number of classes in the catalog.
func (c *Catalog) Count() int {
	return len(c.order)
}

// Names returns every class name in load order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	for i, class := range c.order {
		names[i] = class.Name
	}
	return names
}
