package fpgrowth

import "sort"

// Item an interned item handle, only meaningful together with the Dictionary that produced it
type Item int32

// NilItem item of the root node, never matched by a real item
const NilItem = Item(-1)

// Dictionary interns item names into Item handles, handles are assigned in first-seen order
type Dictionary struct {
	name2Item map[string]Item
	item2Name []string
}

func NewDictionary() *Dictionary {
	return &Dictionary{name2Item: make(map[string]Item)}
}

// Intern returns the handle of name, creating one if name is new
func (d *Dictionary) Intern(name string) Item {
	if item, ok := d.name2Item[name]; ok {
		return item
	}
	item := Item(len(d.item2Name))
	d.name2Item[name] = item
	d.item2Name = append(d.item2Name, name)
	return item
}

// Lookup returns the handle of an already interned name
func (d *Dictionary) Lookup(name string) (Item, bool) {
	item, ok := d.name2Item[name]
	return item, ok
}

// Name returns the name behind item, "" for unknown handles
func (d *Dictionary) Name(item Item) string {
	if item < 0 || int(item) >= len(d.item2Name) {
		return ""
	}
	return d.item2Name[item]
}

// Names item names of an itemset, sorted alphabetically
func (d *Dictionary) Names(items Itemset) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, d.Name(item))
	}
	sort.Strings(names)
	return names
}

func (d *Dictionary) Size() int {
	return len(d.item2Name)
}

// Encode interns every transaction, the result keeps transaction and item order
func (d *Dictionary) Encode(transactions [][]string) [][]Item {
	encoded := make([][]Item, 0, len(transactions))
	for _, transaction := range transactions {
		items := make([]Item, 0, len(transaction))
		for _, name := range transaction {
			items = append(items, d.Intern(name))
		}
		encoded = append(encoded, items)
	}
	return encoded
}
