package grpc

// proto.go hand-writes the service descriptor for loancalc.v1.LoanCalculatorService.
// Messages travel as JSON through jsonCodec, so the request and response
// types are the application DTOs.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/loancalc/internal/application/dto"
)

const serviceName = "loancalc.v1.LoanCalculatorService"

type (
	CalculateRequest         = dto.CalculateLoanRequest
	CalculateResponse        = dto.CalculationResponse
	CalculatePenaltyRequest  = dto.CalculatePenaltyRequest
	CalculatePenaltyResponse = dto.PenaltyResponse
	QuoteSettlementRequest   = dto.QuoteSettlementRequest
	QuoteSettlementResponse  = dto.SettlementResponse
)

// LoanCalculatorServiceServer is the server API for LoanCalculatorService.
type LoanCalculatorServiceServer interface {
	Calculate(context.Context, *CalculateRequest) (*CalculateResponse, error)
	CalculatePenalty(context.Context, *CalculatePenaltyRequest) (*CalculatePenaltyResponse, error)
	QuoteSettlement(context.Context, *QuoteSettlementRequest) (*QuoteSettlementResponse, error)
	mustEmbedUnimplementedLoanCalculatorServiceServer()
}

// UnimplementedLoanCalculatorServiceServer provides forward-compatible default implementations.
type UnimplementedLoanCalculatorServiceServer struct{}

func (UnimplementedLoanCalculatorServiceServer) Calculate(context.Context, *CalculateRequest) (*CalculateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Calculate not implemented")
}
func (UnimplementedLoanCalculatorServiceServer) CalculatePenalty(context.Context, *CalculatePenaltyRequest) (*CalculatePenaltyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculatePenalty not implemented")
}
func (UnimplementedLoanCalculatorServiceServer) QuoteSettlement(context.Context, *QuoteSettlementRequest) (*QuoteSettlementResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QuoteSettlement not implemented")
}
func (UnimplementedLoanCalculatorServiceServer) mustEmbedUnimplementedLoanCalculatorServiceServer() {}

// RegisterLoanCalculatorServiceServer registers srv with the gRPC server.
func RegisterLoanCalculatorServiceServer(s grpclib.ServiceRegistrar, srv LoanCalculatorServiceServer) {
	s.RegisterService(&_LoanCalculatorService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LoanCalculatorService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*LoanCalculatorServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Calculate", Handler: _LoanCalculatorService_Calculate_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "CalculatePenalty", Handler: _LoanCalculatorService_CalculatePenalty_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "QuoteSettlement", Handler: _LoanCalculatorService_QuoteSettlement_Handler},   //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanCalculatorService_Calculate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanCalculatorServiceServer).Calculate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/Calculate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanCalculatorServiceServer).Calculate(ctx, req.(*CalculateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanCalculatorService_CalculatePenalty_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculatePenaltyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanCalculatorServiceServer).CalculatePenalty(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/CalculatePenalty",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanCalculatorServiceServer).CalculatePenalty(ctx, req.(*CalculatePenaltyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanCalculatorService_QuoteSettlement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuoteSettlementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanCalculatorServiceServer).QuoteSettlement(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/QuoteSettlement",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanCalculatorServiceServer).QuoteSettlement(ctx, req.(*QuoteSettlementRequest))
	}
	return interceptor(ctx, in, info, handler)
}
