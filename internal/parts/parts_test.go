package parts

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/model"
)

// Every part must satisfy Component through its embedded Base; the wheels
// additionally satisfy the wheel contract.
var (
	_ model.Component = (*FlatGround)(nil)
	_ model.Component = (*RigidRearFrame)(nil)
	_ model.Component = (*RigidFrontFrame)(nil)
	_ model.Component = (*RiderTorso)(nil)
	_ model.Component = (*TwoPinStickLeg)(nil)
	_ model.Component = (*RollingDisc)(nil)
	_ model.Component = (*Bicycle)(nil)
	_ model.Component = (*BicycleRider)(nil)
	_ WheelModel      = (*KnifeEdgeWheel)(nil)
	_ WheelModel      = (*ToroidalWheel)(nil)
)

func defineTree(t *testing.T, root model.Component) *model.Assembler {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	asm := model.NewAssembler(root, algebra.NewEngine(), model.WithLogger(log))
	if err := asm.DefineAll(); err != nil {
		t.Fatalf("DefineAll: %v", err)
	}
	return asm
}

func solve(t *testing.T, asm *model.Assembler) (*model.System, *algebra.EOM) {
	t.Helper()
	sys, err := asm.Aggregate()
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	eom, err := sys.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return sys, eom
}

func massMatrixSymbols(eom *algebra.EOM) map[string]bool {
	names := make(map[string]bool)
	for _, row := range eom.MassMatrix {
		for _, entry := range row {
			for _, s := range algebra.FreeSymbols(entry) {
				names[s.Name()] = true
			}
		}
	}
	return names
}

func TestRollingDisc(t *testing.T) {
	d, err := NewRollingDisc("rolling")
	if err != nil {
		t.Fatalf("NewRollingDisc: %v", err)
	}
	asm := defineTree(t, d)
	sys, eom := solve(t, asm)

	if got := len(sys.Coordinates()); got != 5 {
		t.Errorf("coordinates = %d, want 5", got)
	}
	if got := len(sys.Speeds()); got != 5 {
		t.Errorf("speeds = %d, want 5", got)
	}
	if got := len(sys.NonholonomicEquations()); got != 2 {
		t.Errorf("nonholonomic equations = %d, want 2 rolling constraints", got)
	}

	// Mass matrix is square over all generalized speeds, constrained or not.
	if len(eom.MassMatrix) != 5 || len(eom.MassMatrix[0]) != 5 {
		t.Fatalf("mass matrix is %dx%d, want 5x5", len(eom.MassMatrix), len(eom.MassMatrix[0]))
	}
	if dof := eom.DegreesOfFreedom(); dof != 3 {
		t.Errorf("DegreesOfFreedom = %d, want 3", dof)
	}

	// The generalized inertia must involve the disc's mass, spin inertia and
	// radius.
	syms := massMatrixSymbols(eom)
	for _, want := range []string{"rolling_disc_m", "rolling_disc_iyy", "rolling_disc_r"} {
		if !syms[want] {
			t.Errorf("mass matrix does not involve %s", want)
		}
	}

	// Gravity enters the forcing through g.
	found := false
	for _, f := range eom.Forcing {
		for _, s := range algebra.FreeSymbols(f) {
			if s.Name() == "rolling_g" {
				found = true
			}
		}
	}
	if !found {
		t.Error("forcing does not involve gravity")
	}

	if got := sys.Origin(sys.Coordinates()[0]); got != "rolling" {
		t.Errorf("Origin of planar coordinate = %q, want rolling", got)
	}

	// Rolling without slip couples the contact velocity to the spin.
	spin := false
	for _, eq := range sys.NonholonomicEquations() {
		for _, s := range algebra.FreeSymbols(eq.LHS) {
			if s.Name() == "rolling_uspin" {
				spin = true
			}
		}
	}
	if !spin {
		t.Error("no rolling constraint involves the spin speed")
	}
}

func TestBicycleFixed(t *testing.T) {
	b, err := NewBicycle("bike")
	if err != nil {
		t.Fatalf("NewBicycle: %v", err)
	}
	asm := defineTree(t, b)
	sys, eom := solve(t, asm)

	// Fixed in the world only the joints move: steer plus two axles.
	wantCoords := []string{"bike_steer_q", "bike_rear_axle_q", "bike_front_axle_q"}
	coords := sys.Coordinates()
	if len(coords) != len(wantCoords) {
		t.Fatalf("coordinates = %d, want %d", len(coords), len(wantCoords))
	}
	for i, want := range wantCoords {
		if coords[i].Name() != want {
			t.Errorf("coordinate[%d] = %s, want %s", i, coords[i].Name(), want)
		}
	}
	if got := sys.Origin(coords[0]); got != "bike.steer" {
		t.Errorf("Origin = %q, want bike.steer", got)
	}

	if len(eom.MassMatrix) != 3 {
		t.Fatalf("mass matrix is %dx?, want 3x3", len(eom.MassMatrix))
	}
	if dof := eom.DegreesOfFreedom(); dof != 3 {
		t.Errorf("DegreesOfFreedom = %d, want 3", dof)
	}
	if got := len(sys.Bodies()); got != 4 {
		t.Errorf("bodies = %d, want 4", got)
	}
	if got := len(sys.Loads()); got != 4 {
		t.Errorf("loads = %d, want 4 gravity forces", got)
	}
}

func TestBicycleOnGround(t *testing.T) {
	b, err := NewBicycle("bike", WithGround(NewFlatGround("ground")))
	if err != nil {
		t.Fatalf("NewBicycle: %v", err)
	}
	asm := defineTree(t, b)
	sys, eom := solve(t, asm)

	// Chassis planar position, yaw and roll plus the three joints.
	if got := len(sys.Speeds()); got != 7 {
		t.Fatalf("speeds = %d, want 7", got)
	}
	if got := len(sys.Coordinates()); got != 7 {
		t.Fatalf("coordinates = %d, want 7", got)
	}
	// Two tyres rolling without slip, two in-plane constraints each.
	if got := len(sys.NonholonomicEquations()); got != 4 {
		t.Errorf("nonholonomic equations = %d, want 4", got)
	}
	if len(eom.MassMatrix) != 7 {
		t.Fatalf("mass matrix is %dx?, want 7x7", len(eom.MassMatrix))
	}
	if dof := eom.DegreesOfFreedom(); dof != 3 {
		t.Errorf("DegreesOfFreedom = %d, want 3", dof)
	}

	syms := massMatrixSymbols(eom)
	for _, want := range []string{
		"bike_rear_frame_m", "bike_front_frame_m",
		"bike_rear_wheel_iyy", "bike_front_wheel_iyy",
		"bike_rear_wheel_r",
	} {
		if !syms[want] {
			t.Errorf("mass matrix does not involve %s", want)
		}
	}
}

func TestBicycleToroidalFront(t *testing.T) {
	b, err := NewBicycle("bike", WithFrontWheel(NewToroidalWheel("front_wheel")))
	if err != nil {
		t.Fatalf("NewBicycle: %v", err)
	}
	asm := defineTree(t, b)
	sys, _ := solve(t, asm)
	if got := len(sys.Speeds()); got != 3 {
		t.Errorf("speeds = %d, want 3", got)
	}
}

// legMount anchors a leg's hip in the world so only the pins move.
type legMount struct {
	model.Base
	leg *TwoPinStickLeg
}

func (m *legMount) DefineKinematics(ctx *model.Context) error {
	hf, err := m.leg.Hip().Frame()
	if err != nil {
		return err
	}
	if err := hf.Weld(ctx.World()); err != nil {
		return err
	}
	hp, err := m.leg.Hip().Point()
	if err != nil {
		return err
	}
	return hp.SetPosition(ctx.Origin(), algebra.ZeroVector(ctx.World()))
}

func TestTwoPinStickLeg(t *testing.T) {
	m := &legMount{Base: model.NewBase("rider"), leg: NewTwoPinStickLeg("leg")}
	if err := m.Attach("leg", m.leg); err != nil {
		t.Fatalf("attach: %v", err)
	}
	asm := defineTree(t, m)
	sys, eom := solve(t, asm)

	if got := len(sys.Bodies()); got != 3 {
		t.Errorf("bodies = %d, want thigh, shank and foot", got)
	}

	// With the hip anchored the knee and ankle pins are the only freedom.
	wantCoords := []string{"rider_leg_knee_q", "rider_leg_ankle_q"}
	coords := sys.Coordinates()
	if len(coords) != len(wantCoords) {
		t.Fatalf("coordinates = %d, want %d", len(coords), len(wantCoords))
	}
	for i, want := range wantCoords {
		if coords[i].Name() != want {
			t.Errorf("coordinate[%d] = %s, want %s", i, coords[i].Name(), want)
		}
	}
	if got := sys.Origin(coords[0]); got != "rider.leg" {
		t.Errorf("Origin = %q, want rider.leg", got)
	}
	if dof := eom.DegreesOfFreedom(); dof != 2 {
		t.Errorf("DegreesOfFreedom = %d, want 2", dof)
	}

	// The welded thigh drops out; the swinging segments carry the inertia.
	syms := massMatrixSymbols(eom)
	for _, want := range []string{
		"rider_leg_shank_m", "rider_leg_shank_iyy",
		"rider_leg_foot_m", "rider_leg_foot_iyy",
		"rider_leg_lsc",
	} {
		if !syms[want] {
			t.Errorf("mass matrix does not involve %s", want)
		}
	}
}

func TestBicycleRider(t *testing.T) {
	b, err := NewBicycle("bicycle")
	if err != nil {
		t.Fatalf("NewBicycle: %v", err)
	}
	br, err := NewBicycleRider("team", b, NewRiderTorso("rider"))
	if err != nil {
		t.Fatalf("NewBicycleRider: %v", err)
	}
	asm := defineTree(t, br)
	sys, eom := solve(t, asm)

	if got := len(sys.Bodies()); got != 5 {
		t.Errorf("bodies = %d, want 5", got)
	}
	// Four bicycle gravity forces plus the rider's.
	if got := len(sys.Loads()); got != 5 {
		t.Errorf("loads = %d, want 5", got)
	}
	// The rigid seat adds no freedom.
	if got := len(sys.Speeds()); got != 3 {
		t.Errorf("speeds = %d, want 3", got)
	}
	if dof := eom.DegreesOfFreedom(); dof != 3 {
		t.Errorf("DegreesOfFreedom = %d, want 3", dof)
	}
}

func TestCatalogFactories(t *testing.T) {
	for _, kind := range []string{
		"flat_ground", "knife_edge_wheel", "toroidal_wheel",
		"rigid_rear_frame", "rigid_front_frame", "rider_torso",
		"two_pin_stick_leg", "rolling_disc", "bicycle", "bicycle_rider",
	} {
		c, err := model.NewOfKind(kind, "instance")
		if err != nil {
			t.Errorf("NewOfKind(%s): %v", kind, err)
			continue
		}
		if c.Name() == "" {
			t.Errorf("NewOfKind(%s) built an unnamed component", kind)
		}
	}
}
