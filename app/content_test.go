package app

import "testing"

func TestDemonListRanks(t *testing.T) {
	for i, d := range DemonList {
		if d.Rank != i+1 {
			t.Fatalf("demon %q has rank %d at position %d", d.Title, d.Rank, i)
		}
		if d.Title == "" {
			t.Fatalf("demon at rank %d has no title", d.Rank)
		}
	}
}

func TestLinkFoldersWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, folder := range LinkFolders {
		if folder.Name == "" {
			t.Fatal("folder with empty name")
		}
		if seen[folder.Name] {
			t.Fatalf("duplicate folder %q", folder.Name)
		}
		seen[folder.Name] = true
		for _, link := range append(append(folder.Links, folder.AIDetectors...), folder.Music...) {
			if link.Title == "" || link.URL == "" {
				t.Fatalf("folder %q has malformed link %+v", folder.Name, link)
			}
		}
	}
}
