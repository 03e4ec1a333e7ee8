package keymap

// Default is the keymap used when configuration defines none.
var Default = []Node{
	{
		Key:  'b',
		Name: "Branch",
		Children: []Leaf{
			{Key: 'c', Name: "Checkout", Command: CommandBranchCheckout},
			{Key: 'd', Name: "Delete", Command: CommandBranchDelete},
			{Key: 'm', Name: "Merge", Command: CommandBranchMerge},
		},
	},
	{
		Key:  't',
		Name: "Tag",
		Children: []Leaf{
			{Key: 'c', Name: "Checkout", Command: CommandTagCheckout},
		},
	},
}
