package main

import (
	"fmt"
	"strings"

	"github.com/evolib/evotable/pkg/biota"
	"github.com/evolib/evotable/pkg/birth"
	"github.com/evolib/evotable/pkg/dictionary"
	"github.com/evolib/evotable/pkg/genome"
	"github.com/evolib/evotable/pkg/hashtable"
	"github.com/evolib/evotable/pkg/instset"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

var defaultInsts = []instset.Instruction{
	{Name: "nop-A", Opcode: 0, Properties: labels.Set{"class": "nop"}},
	{Name: "nop-B", Opcode: 1, Properties: labels.Set{"class": "nop"}},
	{Name: "inc", Opcode: 12, Properties: labels.Set{"class": "arithmetic"}},
	{Name: "h-copy", Opcode: 20, Properties: labels.Set{"class": "lifecycle"}},
	{Name: "h-divide", Opcode: 21, Properties: labels.Set{"class": "lifecycle"}},
}

func main() {
	set, err := instset.New()
	if err != nil {
		panic(err)
	}
	for _, inst := range defaultInsts {
		if err := set.Register(inst); err != nil {
			panic(err)
		}
	}

	// Typo-tolerant mnemonic resolution.
	fmt.Println("suggest h-cpoy:", set.Suggest("h-cpoy"))

	selector, err := GetLabelSelector(map[string]string{"class": "lifecycle"})
	if err != nil {
		panic(err)
	}
	for _, inst := range set.GetByLabel(selector) {
		fmt.Println("lifecycle inst:", inst.Name)
	}

	g, err := genome.Read(strings.NewReader("nop-A\ninc\nh-copy\nh-divide\n"), set)
	if err != nil {
		panic(err)
	}
	fmt.Println("genome:", g)

	// key=value configuration ingestion.
	cfg, err := dictionary.New[int](hashtable.SizeDefault, dictionary.ConvertInt)
	if err != nil {
		panic(err)
	}
	for _, line := range []string{"world-x=60", "world-y=60", "copy-mut-prob=75"} {
		if err := cfg.Load(line); err != nil {
			panic(err)
		}
	}
	v, err := cfg.Get("world-x")
	if err != nil {
		panic(err)
	}
	fmt.Println("world-x:", v)

	biota.Instance().RegisterTraitType("gestation", func() biota.Trait { return struct{}{} })
	fmt.Println("trait types:", biota.Instance().TraitTypes())

	chamber, err := birth.NewSizeHandler()
	if err != nil {
		panic(err)
	}
	if _, ok := chamber.SelectOffspring(g, hashtable.NextIdentity()); !ok {
		fmt.Println("offspring waiting for a mate")
	}
	if mate, ok := chamber.SelectOffspring(g, hashtable.NextIdentity()); ok {
		fmt.Println("paired with parent", mate.ParentID)
	}
}

func GetLabelSelector(l map[string]string) (labels.Selector, error) {
	fullselector := labels.NewSelector()
	for k, v := range l {
		req, err := labels.NewRequirement(k, selection.Equals, []string{v})
		if err != nil {
			return nil, err
		}
		fullselector = fullselector.Add(*req)
	}
	return fullselector, nil
}
