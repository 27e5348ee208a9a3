// Package inodetable holds inode records, keyed by inode ID.
package inodetable

import (
	"sort"

	"github.com/dargueta/inodefs"
)

type Table struct {
	inodes map[inodefs.InodeID]*Inode
}

func New() *Table {
	return &Table{
		inodes: make(map[inodefs.InodeID]*Inode),
	}
}

// Insert adds an inode to the table, replacing any inode with the same ID.
func (table *Table) Insert(inode Inode) {
	stored := inode
	table.inodes[inode.ID] = &stored
}

// Get returns the inode with the given ID. The pointer refers to the table's
// own record, so changes made through it are visible to later lookups.
func (table *Table) Get(id inodefs.InodeID) (*Inode, bool) {
	inode, ok := table.inodes[id]
	return inode, ok
}

// Contains returns true if there's an inode with the given ID.
func (table *Table) Contains(id inodefs.InodeID) bool {
	_, ok := table.inodes[id]
	return ok
}

func (table *Table) Len() int {
	return len(table.inodes)
}

// IDs returns the IDs of every inode in ascending order.
func (table *Table) IDs() []inodefs.InodeID {
	ids := make([]inodefs.InodeID, 0, len(table.inodes))
	for id := range table.inodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Each calls `visit` for every inode in ascending ID order.
func (table *Table) Each(visit func(inode *Inode)) {
	for _, id := range table.IDs() {
		visit(table.inodes[id])
	}
}

// Directories returns every directory inode in ascending ID order.
func (table *Table) Directories() []*Inode {
	var dirs []*Inode
	table.Each(func(inode *Inode) {
		if inode.IsDir() {
			dirs = append(dirs, inode)
		}
	})
	return dirs
}
