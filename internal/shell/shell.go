package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vbonduro/pantry/internal/domain"
	"github.com/vbonduro/pantry/internal/feasibility"
	"github.com/vbonduro/pantry/internal/inventory"
	"github.com/vbonduro/pantry/internal/recipe"
	"github.com/vbonduro/pantry/internal/service"
)

// pantry is the subset of service.PantryService that the shell requires.
type pantry interface {
	Today() time.Time
	SetToday(today time.Time)
	AddGrocery(name string, quantity float64, unit string, expires time.Time, pricePerUnit float64) (domain.Grocery, error)
	RemoveGrocery(name string, amount float64) (inventory.RemoveOutcome, error)
	DiscardGrocery(name string) (int, error)
	SearchGroceries(name string) []domain.Grocery
	ListGroceries() ([]domain.Grocery, bool)
	ListExpired() ([]domain.Grocery, float64)
	TotalValue() float64
	CreateRecipe(in service.RecipeInput) (*recipe.Recipe, error)
	ListRecipes() []*recipe.Recipe
	GetRecipe(name string) (*recipe.Recipe, error)
	CheckRecipe(name string) (bool, []feasibility.Shortfall, error)
	SuggestRecipes() []*recipe.Recipe
	ScaleRecipe(name string, servings int) (*recipe.Recipe, []domain.Grocery, error)
}

// Shell reads commands line by line and writes human-readable replies.
type Shell struct {
	pantry  pantry
	in      *bufio.Scanner
	out     io.Writer
	prompt  string
	logger  *slog.Logger
	stopped bool
}

func New(p pantry, in io.Reader, out io.Writer, prompt string, logger *slog.Logger) *Shell {
	return &Shell{
		pantry: p,
		in:     bufio.NewScanner(in),
		out:    out,
		prompt: prompt,
		logger: logger,
	}
}

// Run processes commands until quit, end of input or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("Pantry ready. Today is %s. Type \"help\" for commands.\n", s.pantry.Today().Format(domain.DateLayout))

	for !s.stopped {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := s.readLine(s.prompt)
		if !ok {
			break
		}
		cmd := ParseCommand(line)
		if cmd.Raw == "" {
			continue
		}

		s.logger.Debug("command", "type", string(cmd.Type), "args", len(cmd.Args))
		s.dispatch(cmd)
	}

	if err := s.in.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (s *Shell) dispatch(cmd Command) {
	switch cmd.Type {
	case CmdHelp:
		s.showHelp()
	case CmdList:
		s.listGroceries()
	case CmdExpired:
		s.listExpired()
	case CmdValue:
		s.printf("Total value of groceries still in date: %s\n", formatMoney(s.pantry.TotalValue()))
	case CmdSearch:
		s.search(cmd)
	case CmdAdd:
		s.addGrocery(cmd)
	case CmdRemove:
		s.removeGrocery(cmd)
	case CmdDiscard:
		s.discardGrocery(cmd)
	case CmdDate:
		s.date(cmd)
	case CmdRecipes:
		s.listRecipes()
	case CmdShow:
		s.showRecipe(cmd)
	case CmdNewRecipe:
		s.newRecipe()
	case CmdCheck:
		s.checkRecipe(cmd)
	case CmdSuggest:
		s.suggest()
	case CmdScale:
		s.scaleRecipe(cmd)
	case CmdQuit:
		s.printf("Bye.\n")
		s.stopped = true
	default:
		s.printf("Unknown command %q. Type \"help\" for commands.\n", cmd.Raw)
	}
}

func (s *Shell) showHelp() {
	s.printf(`Commands:
  list                                        groceries still in date
  expired                                     expired groceries and their value
  value                                       value of groceries still in date
  search <name>                               every grocery with that name
  add <name>, <qty>, <unit>, <YYYY-MM-DD>, <price per unit>
  remove <name>, <amount>                     use some of a grocery
  discard <name>                              throw out every grocery with that name
  date [YYYY-MM-DD]                           show or change the current date
  recipes                                     list the cookbook
  show <recipe>                               print a recipe
  newrecipe                                   create a recipe step by step
  check <recipe>                              can the recipe be made from stock?
  suggest                                     recipes that can be made now
  scale <recipe>, <portions>                  ingredient amounts for more or fewer portions
  quit
`)
}

func (s *Shell) listGroceries() {
	groceries, hasExpired := s.pantry.ListGroceries()
	if len(groceries) == 0 {
		s.printf("No groceries in date.\n")
	}
	for _, g := range groceries {
		s.printf("%s: %s %s, expires %s, %s per unit\n",
			g.Name, recipe.FormatQuantity(g.Quantity), g.Unit,
			g.ExpirationDate.Format(domain.DateLayout), formatMoney(g.PricePerUnit))
	}
	if hasExpired {
		s.printf("Warning: there are expired groceries in storage.\n")
	}
}

func (s *Shell) listExpired() {
	expired, value := s.pantry.ListExpired()
	if len(expired) == 0 {
		s.printf("No expired groceries in storage.\n")
		return
	}
	for _, g := range expired {
		s.printf("%s: %s %s, expired %s\n",
			g.Name, recipe.FormatQuantity(g.Quantity), g.Unit, g.ExpirationDate.Format(domain.DateLayout))
	}
	s.printf("Total value of expired groceries: %s\n", formatMoney(value))
}

func (s *Shell) search(cmd Command) {
	name := cmd.Arg(0)
	if name == "" {
		s.printf("Usage: search <name>\n")
		return
	}
	found := s.pantry.SearchGroceries(name)
	if len(found) == 0 {
		s.printf("No grocery named %q in storage.\n", name)
		return
	}
	for _, g := range found {
		s.printf("%s: %s %s, expires %s, %s per unit\n",
			g.Name, recipe.FormatQuantity(g.Quantity), g.Unit,
			g.ExpirationDate.Format(domain.DateLayout), formatMoney(g.PricePerUnit))
	}
}

func (s *Shell) addGrocery(cmd Command) {
	if len(cmd.Args) != 5 {
		s.printf("Usage: add <name>, <qty>, <unit>, <YYYY-MM-DD>, <price per unit>\n")
		return
	}
	qty, err := parseNumber(cmd.Arg(1))
	if err != nil {
		s.printError(err)
		return
	}
	expires, err := domain.ParseDate(cmd.Arg(3))
	if err != nil {
		s.printError(err)
		return
	}
	price, err := parseNumber(cmd.Arg(4))
	if err != nil {
		s.printError(err)
		return
	}

	g, err := s.pantry.AddGrocery(cmd.Arg(0), qty, cmd.Arg(2), expires, price)
	if err != nil {
		s.printError(err)
		return
	}
	s.printf("Added %s %s of %s.\n", recipe.FormatQuantity(g.Quantity), g.Unit, g.Name)
}

func (s *Shell) removeGrocery(cmd Command) {
	if len(cmd.Args) != 2 {
		s.printf("Usage: remove <name>, <amount>\n")
		return
	}
	amount, err := parseNumber(cmd.Arg(1))
	if err != nil {
		s.printError(err)
		return
	}

	name := cmd.Arg(0)
	outcome, err := s.pantry.RemoveGrocery(name, amount)
	if err != nil {
		s.printError(err)
		return
	}
	switch outcome {
	case inventory.OutcomeReduced:
		s.printf("Removed %s of %s.\n", recipe.FormatQuantity(amount), name)
	case inventory.OutcomeRemoved:
		s.printf("Used up %s; it has been removed from storage.\n", name)
	case inventory.OutcomeNotFound:
		s.printf("Grocery %q not found.\n", name)
	case inventory.OutcomeExceedsAvailable:
		s.printf("Requested amount exceeds what is available. No changes made.\n")
	}
}

func (s *Shell) discardGrocery(cmd Command) {
	n, err := s.pantry.DiscardGrocery(cmd.Arg(0))
	if err != nil {
		s.printError(err)
		return
	}
	if n == 0 {
		s.printf("Grocery %q not found.\n", cmd.Arg(0))
		return
	}
	s.printf("Discarded %d record(s) of %s.\n", n, cmd.Arg(0))
}

func (s *Shell) date(cmd Command) {
	if arg := cmd.Arg(0); arg != "" {
		d, err := domain.ParseDate(arg)
		if err != nil {
			s.printError(err)
			return
		}
		s.pantry.SetToday(d)
	}
	s.printf("Today is %s.\n", s.pantry.Today().Format(domain.DateLayout))
}

func (s *Shell) listRecipes() {
	recipes := s.pantry.ListRecipes()
	if len(recipes) == 0 {
		s.printf("The cookbook is empty.\n")
		return
	}
	for _, r := range recipes {
		s.printf("- %s (%d portions)\n", r.Name, r.PortionSize())
	}
}

func (s *Shell) showRecipe(cmd Command) {
	r, err := s.pantry.GetRecipe(cmd.Arg(0))
	if err != nil {
		s.printError(err)
		return
	}
	s.printf("%s", r.Render())
}

func (s *Shell) newRecipe() {
	var in service.RecipeInput
	var ok bool

	if in.Name, ok = s.readLine("Recipe name: "); !ok {
		return
	}
	if in.Description, ok = s.readLine("Description: "); !ok {
		return
	}
	if in.Procedure, ok = s.readLine("Procedure: "); !ok {
		return
	}
	portions, ok := s.readLine("Portions [1]: ")
	if !ok {
		return
	}
	if portions != "" {
		n, err := strconv.Atoi(portions)
		if err != nil {
			s.printError(fmt.Errorf("%w: portions must be a whole number", domain.ErrInvalidArgument))
			return
		}
		in.PortionSize = n
	}

	s.printf("Enter ingredients as <name>, <qty>, <unit>. Empty line to finish.\n")
	for {
		line, ok := s.readLine("Ingredient: ")
		if !ok || line == "" {
			break
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			s.printf("Expected <name>, <qty>, <unit>.\n")
			continue
		}
		qty, err := parseNumber(fields[1])
		if err != nil {
			s.printError(err)
			continue
		}
		in.Ingredients = append(in.Ingredients, service.IngredientInput{
			Name:     strings.TrimSpace(fields[0]),
			Quantity: qty,
			Unit:     strings.TrimSpace(fields[2]),
		})
	}

	r, err := s.pantry.CreateRecipe(in)
	if err != nil {
		s.printError(err)
		return
	}
	s.printf("Recipe added:\n%s", r.Render())
}

func (s *Shell) checkRecipe(cmd Command) {
	ok, shortfalls, err := s.pantry.CheckRecipe(cmd.Arg(0))
	if err != nil {
		s.printError(err)
		return
	}
	if ok {
		s.printf("You can prepare this recipe.\n")
		return
	}
	s.printf("You can't prepare this recipe. Missing:\n")
	for _, sf := range shortfalls {
		s.printf("- %s: %s %s (have %s)\n", sf.Ingredient.Name,
			recipe.FormatQuantity(sf.Missing()), sf.Ingredient.Unit, recipe.FormatQuantity(sf.Available))
	}
}

func (s *Shell) suggest() {
	suggested := s.pantry.SuggestRecipes()
	if len(suggested) == 0 {
		s.printf("No recipes can be prepared with the available groceries.\n")
		return
	}
	s.printf("You can prepare:\n")
	for _, r := range suggested {
		s.printf("- %s\n", r.Name)
	}
}

func (s *Shell) scaleRecipe(cmd Command) {
	if len(cmd.Args) != 2 {
		s.printf("Usage: scale <recipe>, <portions>\n")
		return
	}
	servings, err := strconv.Atoi(cmd.Arg(1))
	if err != nil {
		s.printError(fmt.Errorf("%w: portions must be a whole number", domain.ErrInvalidArgument))
		return
	}

	r, scaled, err := s.pantry.ScaleRecipe(cmd.Arg(0), servings)
	if err != nil {
		s.printError(err)
		return
	}
	s.printf("%s for %d portions:\n", r.Name, servings)
	for _, g := range scaled {
		s.printf("- %s: %s %s\n", g.Name, recipe.FormatQuantity(g.Quantity), g.Unit)
	}
}

func (s *Shell) readLine(prompt string) (string, bool) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) printError(err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.printf("Not found: %v\n", err)
	case errors.Is(err, domain.ErrInvalidArgument):
		s.printf("Invalid input: %v\n", err)
	default:
		s.logger.Error("command failed", "error", err)
		s.printf("Error: %v\n", err)
	}
}

func (s *Shell) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		s.logger.Error("failed to write output", "error", err)
	}
}

func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidArgument, strings.TrimSpace(s))
	}
	return f, nil
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
